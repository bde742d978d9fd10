// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/umeshgeeta/gcdengine/gcd"
)

// Algorithm selects which reduction the engine runs for a job.
type Algorithm int

const (
	AlgoEuclid Algorithm = iota
	AlgoStein
)

func (a Algorithm) String() string {
	if a == AlgoStein {
		return "stein"
	}
	return "euclid"
}

// Job is the contract a unit of work submitted to the service fulfills. It
// carries the channel on which its execution response is reported, and it
// reveals whether the submitter blocks for the result or not.
type Job interface {
	Id() int

	Run() Response

	SetRespChan(rc chan Response)

	RespChan() chan Response

	Blocking() bool
}

// GcdJob computes the greatest common divisor of one operand set with the
// selected algorithm. The engine call is the timed variant, so every
// response carries the elapsed computation cost alongside the result.
type GcdJob struct {
	id       int
	algo     Algorithm
	operands []int32
	blocking bool
	rc       chan Response
}

var jobIdCounter int64

// NewGcdJob builds a job for the given operand set. At least two operands
// are required; the set itself is validated by the engine when the job runs.
func NewGcdJob(algo Algorithm, blocking bool, operands ...int32) (*GcdJob, error) {
	if len(operands) < 2 {
		return nil, errors.New("a gcd job needs at least two operands")
	}
	j := &GcdJob{
		id:       int(atomic.AddInt64(&jobIdCounter, 1)),
		algo:     algo,
		blocking: blocking,
		operands: append([]int32(nil), operands...),
	}
	return j, nil
}

func (j *GcdJob) Id() int {
	return j.id
}

func (j *GcdJob) Run() Response {
	resp := NewResponse(j.id)
	resp.Algo = j.algo
	ops := j.operands
	var t gcd.Timed
	var err error
	switch j.algo {
	case AlgoStein:
		t, err = gcd.TimedSteinAll(ops[0], ops[1], ops[2:]...)
	default:
		t, err = gcd.TimedEuclidAll(ops[0], ops[1], ops[2:]...)
	}
	if err != nil {
		resp.Status = JobStatusFailed
		resp.Err = err
		return *resp
	}
	resp.Status = JobStatusDone
	resp.Gcd = t.Gcd
	resp.Elapsed = t.Elapsed
	return *resp
}

func (j *GcdJob) SetRespChan(rc chan Response) {
	j.rc = rc
}

func (j *GcdJob) RespChan() chan Response {
	return j.rc
}

func (j *GcdJob) Blocking() bool {
	return j.blocking
}

// Operands returns a copy of the job's operand set.
func (j *GcdJob) Operands() []int32 {
	return append([]int32(nil), j.operands...)
}
