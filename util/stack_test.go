/*
 * Copyright (c) 2020. Neosemantix, Inc.
 * Author: Umesh Patil
 */

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := Stack[int]{}
	assert.True(t, s.Empty())

	s.Push(1)
	assert.Equal(t, 1, s.Size())

	val, err := s.Peek()
	assert.Nil(t, err)
	assert.Equal(t, 1, val)
	assert.Equal(t, 1, s.Size())

	val, err = s.Pop()
	assert.Nil(t, err)
	assert.Equal(t, 1, val)
	assert.True(t, s.Empty())

	_, err = s.Peek()
	assert.NotNil(t, err)

	_, err = s.Pop()
	assert.NotNil(t, err)
}

// The dispatcher leases and returns channel slots through a Stack[int];
// this mirrors that usage.
func TestStackAsFreeList(t *testing.T) {
	assert := assert.New(t)
	s := Stack[int]{}
	for i := 0; i < 4; i++ {
		s.Push(i)
	}

	leased := make([]int, 0, 4)
	for !s.Empty() {
		slot, err := s.Pop()
		assert.Nil(err)
		leased = append(leased, slot)
	}
	assert.Equal(4, len(leased))

	for _, slot := range leased {
		s.Push(slot)
	}
	assert.Equal(4, s.Size())
}
