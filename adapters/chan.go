// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Channel adapter: the canonical genuinely single-pass sequence.

package adapters

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// ChanOf bridges a receive channel onto the sequence contract. Every
// iterator obtained from it pulls from the same channel, so iteration
// consumes the stream: this is a single-pass source by nature. Exhaustion
// (a closed, drained channel) is sticky, courtesy of channel semantics.
type ChanOf[E any] <-chan E

// Chan erases ch behind a single-pass wrapper.
func Chan[E any](ch <-chan E) facade.AnySequence[E] {
	return facade.Sequence[E](ChanOf[E](ch))
}

func (c ChanOf[E]) Iterate() api.Iterator[E] {
	return api.IteratorFunc[E](func() (E, bool) {
		e, ok := <-c
		return e, ok
	})
}
