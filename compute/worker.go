// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

// Package compute runs GCD jobs on a pool of workers and reports per-job
// results together with running statistics. The client facing surface is
// Service, which wires a Dispatcher, a worker Pool and a Monitor from JSON
// configuration. A submitted job is handed a response channel by the
// dispatcher; blocking submissions wait in line for the response while
// async ones return right after queuing.
//
// Each job is one whole GCD computation; the service never splits a single
// reduction across workers. Concurrency here is only across independent
// jobs, which the engine supports without any coordination.
package compute

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/umeshgeeta/gcdengine/util"
)

// Worker is the core execution contract: Start, Stop and Submit to receive
// a job. Callers can also choose whether Submit waits for queue space.
type Worker interface {
	Start()

	Submit(j Job) error

	QueueLen() int

	WaitForSlot(wfs bool)

	Stop()
}

// Worker configuration parameters.
type WorkerCfg struct {

	// How many jobs the worker accepts while it is already busy. These
	// jobs form the queue.
	JobQueueCapacity int `json:"job_queue_capacity"`

	// If true, Submit blocks until queue space frees up. By default it is
	// false: once the queue is full, submissions fail until it drains.
	WaitForSlot bool `json:"wait_for_slot"`
}

// worker executes jobs one at a time on its own goroutine. Submitted jobs
// are funneled through a channel so waiting for work happens naturally.
type worker struct {
	continueRun bool
	jobQueue    chan Job
	capacity    int
	waitForSlot bool
	mux         sync.Mutex
}

func NewWorker(cfg WorkerCfg) Worker {
	// The worker starts with continueRun false; the caller must invoke
	// Start, which builds the queue and kicks off the run loop.
	w := new(worker)
	w.capacity = cfg.JobQueueCapacity
	w.waitForSlot = cfg.WaitForSlot
	return w
}

// Start the worker. The expected pattern is create, start, stop; repeated
// starts and stops are not supported at present.
func (w *worker) Start() {
	w.jobQueue = make(chan Job, w.capacity)
	w.continueRun = true
	go w.run()
}

func (w *worker) run() {
	for w.continueRun {
		job, ok := <-w.jobQueue
		if !ok {
			break
		}
		if job == nil {
			continue
		}
		rspChan := job.RespChan()
		if rspChan == nil {
			// Every job is expected to carry a channel, at least for the
			// dispatcher's housekeeping. Nothing to report back on, so we
			// only log the condition.
			util.Log(fmt.Sprintf("Job %d has no channel to report back its response.", job.Id()))
			continue
		}
		resp := job.Run()
		resp.JobId = job.Id()
		rspChan <- resp
	}
	util.LogDebug("worker run loop exiting")
}

func (w *worker) Submit(job Job) error {
	if !w.continueRun {
		return errors.New("worker is not started")
	}
	if w.waitForSlot {
		// the channel blocks naturally until capacity frees up
		w.jobQueue <- job
		return nil
	}
	w.mux.Lock()
	defer w.mux.Unlock()
	if len(w.jobQueue) >= w.capacity {
		return errors.New("cannot submit, worker queue is full")
	}
	w.jobQueue <- job
	return nil
}

func (w *worker) Stop() {
	w.continueRun = false
	// also close the queue channel so no more jobs are accepted
	close(w.jobQueue)
}

func (w *worker) QueueLen() int {
	return len(w.jobQueue)
}

func (w *worker) WaitForSlot(wfs bool) {
	w.waitForSlot = wfs
}
