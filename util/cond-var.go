// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

// The built-in sync.Cond broadcasts exactly once; a routine which reaches
// Wait a moment too late misses the signal and hangs forever. For short
// running work that window is very real: the compute dispatcher regularly
// sees jobs finish before the submitting routine has managed to start
// waiting. CondVar repeats the broadcast at a small interval for a bounded
// duration, so late waiters get more than one chance to get out of Wait.
//
// The usage pattern is that at any given time all waits are for a single
// condition. Repeat calls to Broadcast are not allowed until the previous
// one completes, which is determined by receipts from waiters. Signal is
// Broadcast with a single expected receipt: any one waiter responding is
// enough. CondVar bundles its own locker, so no explicit Lock and Unlock
// are needed around Wait.
package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Wrapper around the built-in Cond struct. All additional variables are
// for internal consumption only.
type CondVar struct {
	sync.Mutex
	cond          *sync.Cond
	gapInterval   int // in microseconds
	durationLimit int // in microseconds
	howManyLeft   int
}

// NewCondVar creates a CondVar where the first argument is the gap between
// two subsequent broadcasts in microseconds and the second indicates how
// long to keep broadcasting, again in microseconds.
func NewCondVar(gi int, dl int) *CondVar {
	cv := new(CondVar)
	cv.cond = sync.NewCond(cv)
	cv.gapInterval = gi
	cv.durationLimit = dl
	return cv
}

// Wait for the condition.
func (cv *CondVar) Wait() {
	cv.Lock()
	cv.cond.Wait()
	cv.howManyLeft--
	cv.Unlock()
}

const errMsgBdIncomplete = "earlier broadcast not complete"

// Broadcast with how many receipts from waiters are expected.
func (cv *CondVar) Broadcast(r int) error {
	if cv.howManyLeft > 0 {
		return errors.New(errMsgBdIncomplete)
	}
	cv.Lock()
	cv.howManyLeft = r
	cv.Unlock()
	go func() {
		broadcast(cv)
	}()
	return nil
}

// Signal expects any one listener to respond back.
func (cv *CondVar) Signal() error {
	return cv.Broadcast(1)
}

func broadcast(cv *CondVar) {
	start := time.Now()
	limit := time.Duration(cv.durationLimit) * time.Microsecond
	for cv.howManyLeft > 0 && time.Since(start) < limit {
		cv.cond.Broadcast()
		time.Sleep(time.Duration(cv.gapInterval) * time.Microsecond)
	}
	if cv.howManyLeft > 0 {
		Log(fmt.Sprintf("Could not get receipt from all broadcast listeners. Left out: %d", cv.howManyLeft))
	}
}
