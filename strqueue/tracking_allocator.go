package strqueue

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/arloliu/go-strqueue/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

// TrackingAllocator is an Allocator that accounts for every outstanding block.
//
// It keeps live block and byte counts per BlockKind, counts releases that have no
// matching reservation, and can refuse requests on demand (FailNext), at random
// (SetFailRate) or once a byte limit is reached (WithByteLimit). It is intended for
// tests and diagnostics: after every queue created with it has been freed, Leaked
// reports false.
type TrackingAllocator struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	failRate int
	failNext int
	limit    int64

	stats          *xsync.MapOf[BlockKind, *blockStats]
	liveBytes      *xsync.Counter
	refused        *xsync.Counter
	doubleFrees    *xsync.Counter
	sizeMismatches *xsync.Counter

	logger logger.Logger
}

type blockStats struct {
	live  *xsync.Counter
	bytes *xsync.Counter
	total *xsync.Counter
}

var _ Allocator = (*TrackingAllocator)(nil)

// TrackingOption configures a TrackingAllocator.
type TrackingOption func(*TrackingAllocator)

// WithSeed seeds the random source used by SetFailRate, making injected failures reproducible.
func WithSeed(seed uint64) TrackingOption {
	return func(a *TrackingAllocator) {
		a.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
	}
}

// WithByteLimit refuses any reservation that would take the live byte count above limit.
// A non-positive limit disables the check.
func WithByteLimit(limit int64) TrackingOption {
	return func(a *TrackingAllocator) {
		a.limit = limit
	}
}

// WithTrackingLogger sets the logger used to report accounting violations.
func WithTrackingLogger(l logger.Logger) TrackingOption {
	return func(a *TrackingAllocator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewTrackingAllocator creates a TrackingAllocator that grants every request until
// configured otherwise.
func NewTrackingAllocator(opts ...TrackingOption) *TrackingAllocator {
	a := &TrackingAllocator{
		rnd:            rand.New(rand.NewPCG(1, 2)), //nolint:gosec
		stats:          xsync.NewMapOf[BlockKind, *blockStats](),
		liveBytes:      xsync.NewCounter(),
		refused:        xsync.NewCounter(),
		doubleFrees:    xsync.NewCounter(),
		sizeMismatches: xsync.NewCounter(),
		logger:         logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// FailNext makes the next n reservations fail regardless of the fail rate.
func (a *TrackingAllocator) FailNext(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failNext = max(n, 0)
}

// SetFailRate makes each reservation fail with the given probability in percent,
// clamped to [0, 100].
func (a *TrackingAllocator) SetFailRate(percent int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failRate = min(max(percent, 0), 100)
}

// Reserve implements Allocator.
func (a *TrackingAllocator) Reserve(kind BlockKind, size int) error {
	if err := a.admit(kind, size); err != nil {
		a.refused.Inc()
		return err
	}

	s := a.statsOf(kind)
	s.live.Inc()
	s.total.Inc()
	s.bytes.Add(int64(size))
	a.liveBytes.Add(int64(size))

	return nil
}

func (a *TrackingAllocator) admit(kind BlockKind, size int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failNext > 0 {
		a.failNext--
		return fmt.Errorf("%w: injected failure for %s block of %d bytes", ErrAllocation, kind, size)
	}

	if a.failRate > 0 && a.rnd.IntN(100) < a.failRate {
		return fmt.Errorf("%w: random failure for %s block of %d bytes", ErrAllocation, kind, size)
	}

	if a.limit > 0 && a.liveBytes.Value()+int64(size) > a.limit {
		return fmt.Errorf("%w: %s block of %d bytes exceeds limit of %d bytes", ErrAllocation, kind, size, a.limit)
	}

	return nil
}

// Release implements Allocator. Releasing a kind that has no live blocks is counted
// as a double free, and releasing more bytes than are live for the kind (or a last
// block whose size differs from what is left) is counted as a size mismatch. Both are
// logged and otherwise ignored, so the block stays live.
func (a *TrackingAllocator) Release(kind BlockKind, size int) {
	s := a.statsOf(kind)
	live, liveBytes := s.live.Value(), s.bytes.Value()
	if live <= 0 {
		a.doubleFrees.Inc()
		a.logger.Error("release without matching reservation", "kind", kind.String(), "size", size)

		return
	}

	if int64(size) > liveBytes || (live == 1 && int64(size) != liveBytes) {
		a.sizeMismatches.Inc()
		a.logger.Error("release size does not match reservation",
			"kind", kind.String(), "size", size, "liveBytes", liveBytes)

		return
	}

	s.live.Dec()
	s.bytes.Add(-int64(size))
	a.liveBytes.Add(-int64(size))
}

// Live returns the number of outstanding blocks of the given kind.
func (a *TrackingAllocator) Live(kind BlockKind) int64 {
	return a.statsOf(kind).live.Value()
}

// LiveBytes returns the number of outstanding bytes over all kinds.
func (a *TrackingAllocator) LiveBytes() int64 {
	return a.liveBytes.Value()
}

// LiveBytesOf returns the number of outstanding bytes of the given kind.
func (a *TrackingAllocator) LiveBytesOf(kind BlockKind) int64 {
	return a.statsOf(kind).bytes.Value()
}

// Total returns the number of successful reservations of the given kind so far.
func (a *TrackingAllocator) Total(kind BlockKind) int64 {
	return a.statsOf(kind).total.Value()
}

// Refused returns the number of reservations that were refused.
func (a *TrackingAllocator) Refused() int64 {
	return a.refused.Value()
}

// DoubleFrees returns the number of releases that had no matching reservation.
func (a *TrackingAllocator) DoubleFrees() int64 {
	return a.doubleFrees.Value()
}

// SizeMismatches returns the number of releases whose size did not match the
// outstanding reservations of their kind.
func (a *TrackingAllocator) SizeMismatches() int64 {
	return a.sizeMismatches.Value()
}

// Leaked reports whether any block is still outstanding.
func (a *TrackingAllocator) Leaked() bool {
	leaked := false
	a.stats.Range(func(_ BlockKind, s *blockStats) bool {
		if s.live.Value() != 0 {
			leaked = true
			return false
		}
		return true
	})

	return leaked
}

func (a *TrackingAllocator) statsOf(kind BlockKind) *blockStats {
	s, _ := a.stats.LoadOrCompute(kind, func() *blockStats {
		return &blockStats{
			live:  xsync.NewCounter(),
			bytes: xsync.NewCounter(),
			total: xsync.NewCounter(),
		}
	})

	return s
}
