package langopts

import "sync/atomic"

// Shared is a reference-counted handle to published LangOptions.
//
// Publish takes a private copy, so the value seen by owners cannot be changed
// through the original pointer. Owners must not write through Options; the
// count is atomic but the options themselves are not locked.
type Shared struct {
	opts atomic.Pointer[LangOptions]
	refs atomic.Int32
}

// Publish freezes a copy of o behind a handle owned once
func Publish(o *LangOptions) *Shared {
	s := &Shared{}
	s.opts.Store(o.Clone())
	s.refs.Store(1)

	return s
}

// Retain adds an owner. It panics once every owner has released, leaving the
// count at zero.
func (s *Shared) Retain() *Shared {
	for {
		n := s.refs.Load()
		if n <= 0 {
			panic("langopts: Retain after final Release")
		}

		if s.refs.CompareAndSwap(n, n+1) {
			return s
		}
	}
}

// Release drops an owner and reports whether it was the last one. The
// options are dropped with the last owner.
func (s *Shared) Release() bool {
	n := s.refs.Add(-1)

	switch {
	case n < 0:
		panic("langopts: Release without matching Retain")
	case n == 0:
		s.opts.Store(nil)
		return true
	default:
		return false
	}
}

// Options returns the shared options. It panics once every owner has released.
func (s *Shared) Options() *LangOptions {
	o := s.opts.Load()
	if o == nil {
		panic("langopts: use of released LangOptions")
	}

	return o
}

// RefCount returns the current number of owners
func (s *Shared) RefCount() int32 {
	return s.refs.Load()
}
