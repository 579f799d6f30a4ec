// Package api
// Author: momentics
//
// Mock/testing utilities for the capability contracts; extendable as the
// contract surface evolves.

package api

// MockIterator is a test and mock-friendly implementation of Iterator.
type MockIterator[E any] struct {
	NextFunc func() (E, bool)
}

func (m *MockIterator[E]) Next() (E, bool) { return m.NextFunc() }

// MockSequence is a test and mock-friendly implementation of Sequence.
type MockSequence[E any] struct {
	IterateFunc func() Iterator[E]
}

func (m *MockSequence[E]) Iterate() Iterator[E] { return m.IterateFunc() }
