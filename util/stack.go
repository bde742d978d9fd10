/*
 * Copyright (c) 2020. Neosemantix, Inc.
 * Author: Umesh Patil
 */

// A simple generic stack implementation, safe for concurrent pushers and
// poppers. The compute dispatcher keeps its pool of free response channel
// slots on one of these.

package util

import (
	"sync"

	"github.com/pkg/errors"
)

type Stack[T any] struct { // as in:		s := Stack[int]{}
	stackSlice []T
	mux        sync.Mutex
}

func (s *Stack[T]) Empty() bool {
	return len(s.stackSlice) == 0
}

func (s *Stack[T]) Peek() (T, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.Empty() {
		return s.stackSlice[s.Size()-1], nil
	}
	return *new(T), errors.New("stack is empty")
}

func (s *Stack[T]) Pop() (T, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.Empty() {
		result := s.stackSlice[s.Size()-1]
		s.stackSlice = s.stackSlice[:s.Size()-1]
		return result, nil
	}
	return *new(T), errors.New("stack is empty")
}

func (s *Stack[T]) Push(top T) {
	s.mux.Lock()
	s.stackSlice = append(s.stackSlice, top)
	s.mux.Unlock()
}

func (s *Stack[T]) Size() int {
	return len(s.stackSlice)
}
