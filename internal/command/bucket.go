package command

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// BucketSet holds the named rate-limit buckets. Each (bucket, caller) pair
// gets a capacity-1 limiter refilled once per bucket delay, so a caller can
// run each bucketed command family once per window.
type BucketSet struct {
	mu      sync.Mutex
	delays  map[string]time.Duration
	entries map[bucketKey]*bucketEntry

	now func() time.Time
}

type bucketKey struct {
	bucket string
	caller string
}

type bucketEntry struct {
	lim *rate.Limiter
	// refundable is set after a successful consumption and cleared by
	// Refund, so a slot can be returned at most once.
	refundable bool
	// notified is set after the first rejection in a window; repeat
	// rejections stay silent until a consumption resets it.
	notified bool
}

// NewBucketSet returns an empty set. Buckets must be defined before use;
// consuming from an undefined bucket always succeeds.
func NewBucketSet() *BucketSet {
	return &BucketSet{
		delays:  make(map[string]time.Duration),
		entries: make(map[bucketKey]*bucketEntry),
		now:     time.Now,
	}
}

// Define names a bucket and sets its per-caller delay.
func (b *BucketSet) Define(name string, delay time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delays[name] = delay
}

// Consume takes the caller's slot in the named bucket. On rejection it
// reports the remaining wait and whether this is the first rejection since
// the caller's last successful consumption.
func (b *BucketSet) Consume(bucket, caller string) (ok bool, retryAfter time.Duration, firstTry bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay, defined := b.delays[bucket]
	if bucket == "" || !defined {
		return true, 0, false
	}

	key := bucketKey{bucket: bucket, caller: caller}
	e := b.entries[key]
	if e == nil {
		e = &bucketEntry{lim: rate.NewLimiter(rate.Every(delay), 1)}
		b.entries[key] = e
	}

	now := b.now()
	res := e.lim.ReserveN(now, 1)
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		first := !e.notified
		e.notified = true
		return false, wait, first
	}

	e.refundable = true
	e.notified = false
	return true, 0, false
}

// Refund returns the slot taken by the caller's last successful Consume.
// Refunding twice, or without a prior consumption, is a no-op.
func (b *BucketSet) Refund(bucket, caller string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entries[bucketKey{bucket: bucket, caller: caller}]
	if e == nil || !e.refundable {
		return
	}
	// AllowN with a negative count puts the token back; the limiter caps
	// accumulated tokens at its burst on the next consumption.
	e.lim.AllowN(b.now(), -1)
	e.refundable = false
}
