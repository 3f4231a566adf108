package ui

import "sync/atomic"

// FetchGuard issues monotonic tokens for overlapping fetches. A page
// takes a token before each reload; when the response lands it keeps the
// result only if its token is still the latest, so a slow stale response
// can never overwrite a fresher one.
type FetchGuard struct {
	seq atomic.Uint64
}

func (g *FetchGuard) Next() uint64 {
	return g.seq.Add(1)
}

func (g *FetchGuard) Latest(token uint64) bool {
	return g.seq.Load() == token
}
