// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/umeshgeeta/gcdengine/util"
)

// Stats tracks the jobs submitted and executed through a dispatcher,
// including per-algorithm completion counts and the accumulated engine
// compute time.
type Stats struct {
	sync.Mutex
	UpSinceWhen           time.Time `json:"up_since_when"`
	JobsSubmitted         int       `json:"jobs_submitted"`
	BlockingJobsSubmitted int       `json:"blocking_jobs_submitted"`
	AsyncJobsSubmitted    int       `json:"async_jobs_submitted"`
	JobsInExecution       int       `json:"jobs_in_execution"`
	EuclidJobsDone        int       `json:"euclid_jobs_done"`
	SteinJobsDone         int       `json:"stein_jobs_done"`
	JobsFailed            int       `json:"jobs_failed"`
	TotalComputeTimeNs    int64     `json:"total_compute_time_ns"`
}

// Only the compute package can construct stats, on purpose.
func newStats() *Stats {
	s := Stats{}
	s.UpSinceWhen = time.Now()
	return &s
}

func (s *Stats) jobSubmitted(blocking bool) {
	s.Lock()
	if blocking {
		s.BlockingJobsSubmitted++
	} else {
		s.AsyncJobsSubmitted++
	}
	s.JobsSubmitted++
	s.JobsInExecution++
	s.Unlock()
}

func (s *Stats) jobDone(resp Response) {
	s.Lock()
	s.JobsInExecution--
	switch {
	case resp.Status != JobStatusDone:
		s.JobsFailed++
	case resp.Algo == AlgoStein:
		s.SteinJobsDone++
	default:
		s.EuclidJobsDone++
	}
	s.TotalComputeTimeNs += resp.Elapsed.Nanoseconds()
	s.Unlock()
}

func (s *Stats) byteArray() []byte {
	s.Lock()
	defer s.Unlock()
	result, err := json.Marshal(s)
	if err != nil {
		util.Log(fmt.Sprintf("Error in marshalling Stats: %v", err))
		return nil
	}
	return result
}

func parseStats(ba []byte) *Stats {
	var result Stats
	err := json.Unmarshal(ba, &result)
	if err != nil {
		util.Log(fmt.Sprintf("Failed to parse Stats %v", err))
		return nil
	}
	return &result
}
