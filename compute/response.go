// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import "time"

const JobStatusNotSubmitted = 0
const JobStatusFailedToSubmit = 1
const JobStatusSubmitted = 100
const JobStatusDone = 200
const JobStatusFailed = 500

// Response is the outcome of one job execution.
type Response struct {
	// Id of the job to which this response corresponds
	JobId int

	// Job status - whether it succeeded or failed or some other state
	Status int

	// Which reduction algorithm produced the result
	Algo Algorithm

	// The greatest common divisor of the job's operand set
	Gcd int32

	// Wall clock cost of the computation, from the engine's timed variant
	Elapsed time.Duration

	// Engine failure, set when Status is JobStatusFailed
	Err error
}

func NewResponse(jid int) *Response {
	r := new(Response)
	r.JobId = jid
	return r
}

func FailedToSubmitResponse(jid int) *Response {
	r := NewResponse(jid)
	r.Status = JobStatusFailedToSubmit
	return r
}
