// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/umeshgeeta/gcdengine/util"
)

// Broadcast pacing for waiting job condition variables. The window is kept
// generous so a submitter which reaches Wait a moment after a very short
// job has finished still catches a repeat broadcast.
const wjBroadcastGapMicros = 50
const wjBroadcastLimitMicros = 1000000

// Dispatcher owns the response channels on which job execution results come
// back, the records of routines waiting on those results, and the running
// job statistics. Each submission leases one response channel slot off a
// free list; the slot returns to the list once the response is collected.
type Dispatcher struct {
	pool        *Pool
	channels    []chan Response
	freeSlots   *util.Stack[int]
	waiting     map[int]*waitingJob
	mux         sync.Mutex
	continueRun bool
	waitForChan bool
	JobStats    *Stats
}

type DispatcherCfg struct {

	// Number of channels used to receive back job execution results
	ChannelCount int `json:"channel_count"`

	// Channel buffer size
	ChannelCapacity int `json:"channel_capacity"`

	// Whether a submission waits for a response channel slot to free up
	// instead of failing when all are leased out
	WaitForChanAvail bool `json:"wait_for_chan_avail"`
}

// NewDispatcher creates a dispatcher with the given number of response
// channels. The channel count caps how many jobs can be in flight at once;
// for short running jobs a small number is plenty.
func NewDispatcher(cfg DispatcherCfg, pool *Pool) *Dispatcher {
	d := new(Dispatcher)
	d.pool = pool
	d.waitForChan = cfg.WaitForChanAvail
	d.channels = make([]chan Response, cfg.ChannelCount)
	d.freeSlots = &util.Stack[int]{}
	for i := range d.channels {
		d.channels[i] = make(chan Response, cfg.ChannelCapacity)
		d.freeSlots.Push(i)
	}
	d.waiting = make(map[int]*waitingJob)
	d.JobStats = newStats()
	return d
}

func (d *Dispatcher) Start() {
	d.continueRun = true
	d.pool.Start()
	for i := range d.channels {
		// One listener routine per channel. Every response is matched to
		// its waiting job record by job id, the record is completed and
		// its waiters are woken by repeated broadcast.
		go d.listen(d.channels[i])
	}
}

func (d *Dispatcher) listen(ch chan Response) {
	for d.continueRun {
		resp, ok := <-ch
		if !ok {
			return
		}
		d.JobStats.jobDone(resp)
		d.mux.Lock()
		wj := d.waiting[resp.JobId]
		d.mux.Unlock()
		if wj == nil {
			util.Log(fmt.Sprintf("No waiting record for response of job %d", resp.JobId))
			continue
		}
		r := resp
		wj.complete(&r, wj.receipts)
	}
}

// Submit hands the job a leased response channel, records a waiting entry
// for it and pushes it to the worker pool. For a blocking job the call
// stays put until the response arrives and returns it; for an async job it
// returns a nil response right after queuing.
func (d *Dispatcher) Submit(job Job) (*Response, error) {
	if job == nil {
		return nil, errors.New("invalid job")
	}
	slot, err := d.leaseSlot()
	if err != nil {
		return nil, err
	}
	job.SetRespChan(d.channels[slot])
	wj := newWaitingJob(job.Blocking())
	d.mux.Lock()
	d.waiting[job.Id()] = wj
	d.mux.Unlock()
	// housekeeping routine: returns the slot once the response is in
	go d.housekeep(job.Id(), slot, wj)
	d.JobStats.jobSubmitted(job.Blocking())
	if err := d.pool.Submit(job); err != nil {
		// No response will ever appear on the channel. A synthetic one
		// lets the housekeeping routine run its normal course; only that
		// one receipt is expected since the submitter gets the error.
		wj.complete(FailedToSubmitResponse(job.Id()), 1)
		return nil, err
	}
	if job.Blocking() {
		return wj.await(), nil
	}
	return nil, nil
}

func (d *Dispatcher) leaseSlot() (int, error) {
	for {
		slot, err := d.freeSlots.Pop()
		if err == nil {
			return slot, nil
		}
		if !d.waitForChan {
			return 0, errors.Wrap(err, "cannot submit, no response channel available")
		}
		time.Sleep(100 * time.Microsecond)
	}
}

func (d *Dispatcher) housekeep(jobId int, slot int, wj *waitingJob) {
	wj.await()
	d.mux.Lock()
	delete(d.waiting, jobId)
	d.mux.Unlock()
	d.freeSlots.Push(slot)
}

func (d *Dispatcher) Stop() {
	d.continueRun = false
	d.pool.Stop()
	for i := range d.channels {
		close(d.channels[i])
	}
}

// waitingJob is the record of one in-flight job. The housekeeping routine
// always waits on it; for a blocking job the submitting routine waits too,
// hence two expected receipts. The response pointer is guarded by the
// condition variable's own lock.
type waitingJob struct {
	cv       *util.CondVar
	receipts int
	resp     *Response
}

func newWaitingJob(blocking bool) *waitingJob {
	r := 1
	if blocking {
		r = 2
	}
	return &waitingJob{
		cv:       util.NewCondVar(wjBroadcastGapMicros, wjBroadcastLimitMicros),
		receipts: r,
	}
}

func (wj *waitingJob) complete(resp *Response, receipts int) {
	wj.cv.Lock()
	wj.resp = resp
	wj.cv.Unlock()
	wj.cv.Broadcast(receipts)
}

func (wj *waitingJob) await() *Response {
	for wj.response() == nil {
		wj.cv.Wait()
	}
	return wj.response()
}

func (wj *waitingJob) response() *Response {
	wj.cv.Lock()
	defer wj.cv.Unlock()
	return wj.resp
}
