package app

import "context"

// fetcher sequences listing requests. Starting a request cancels the one
// in flight, and a response is applied only if it carries the latest
// sequence number.
type fetcher struct {
	seq    uint64
	cancel context.CancelFunc
	busy   bool
}

// start cancels any pending request and returns the context and sequence
// number of a new one.
func (f *fetcher) start() (context.Context, uint64) {
	f.cancelPending()
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.seq++
	f.busy = true
	return ctx, f.seq
}

// finish reports whether seq is the latest request and, if so, marks it
// done.
func (f *fetcher) finish(seq uint64) bool {
	if seq != f.seq {
		return false
	}
	f.busy = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return true
}

func (f *fetcher) pending() bool {
	return f.busy
}

func (f *fetcher) cancelPending() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.busy = false
}
