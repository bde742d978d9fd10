// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umeshgeeta/gcdengine/util"
)

var svc *Service

func TestMain(m *testing.M) {
	// We use the default configuration, including for logging. Passing a
	// bogus file name exercises the packaged fallback.
	svc = NewService("xxx", true)
	util.SetConsoleLog(true)
	util.Log(fmt.Sprintf("Config: %v", svc.CfgInUse))

	svc.Start()

	os.Exit(m.Run())
}

func TestServiceFromDefaultCfg(t *testing.T) {
	assert := assert.New(t)

	dsp := svc.jobDispatcher
	assert.NotNil(dsp)

	pool := dsp.pool
	assert.NotNil(pool)
	assert.Equal(svc.CfgInUse.Pool.AsyncWorkerCount+svc.CfgInUse.Pool.BlockingWorkerCount,
		pool.TotalWorkerCount())

	assert.Equal(svc.CfgInUse.Dispatcher.ChannelCount, len(dsp.channels))
	assert.NotNil(dsp.JobStats)
}

func TestServiceBlockingJobs(t *testing.T) {
	assert := assert.New(t)

	job, err := NewGcdJob(AlgoEuclid, true, 48, 18)
	assert.Nil(err)
	resp, err := svc.Submit(job)
	assert.Nil(err)
	assert.NotNil(resp)
	assert.Equal(JobStatusDone, resp.Status)
	assert.Equal(int32(6), resp.Gcd)
	assert.True(resp.Elapsed >= 0)

	job, err = NewGcdJob(AlgoStein, true, 12, 18, 24)
	assert.Nil(err)
	resp, err = svc.Submit(job)
	assert.Nil(err)
	assert.Equal(JobStatusDone, resp.Status)
	assert.Equal(int32(6), resp.Gcd)
}

// The two algorithms agree on any valid operand set; the service surface
// must preserve that.
func TestServiceAlgorithmsAgree(t *testing.T) {
	assert := assert.New(t)
	operands := []int32{84, -126, 210, 462}

	je, err := NewGcdJob(AlgoEuclid, true, operands...)
	assert.Nil(err)
	re, err := svc.Submit(je)
	assert.Nil(err)

	js, err := NewGcdJob(AlgoStein, true, operands...)
	assert.Nil(err)
	rs, err := svc.Submit(js)
	assert.Nil(err)

	assert.Equal(JobStatusDone, re.Status)
	assert.Equal(JobStatusDone, rs.Status)
	assert.Equal(re.Gcd, rs.Gcd)
	assert.Equal(int32(42), re.Gcd)
}

func TestServiceGuardFailureResponse(t *testing.T) {
	assert := assert.New(t)

	job, err := NewGcdJob(AlgoEuclid, true, 0, 0)
	assert.Nil(err)
	resp, err := svc.Submit(job)
	// submission itself succeeds; the failure is in the response
	assert.Nil(err)
	assert.NotNil(resp)
	assert.Equal(JobStatusFailed, resp.Status)
	assert.NotNil(resp.Err)
}

func TestServiceAsyncJobAndStats(t *testing.T) {
	assert := assert.New(t)

	job, err := NewGcdJob(AlgoStein, false, 270, 192)
	assert.Nil(err)
	resp, err := svc.Submit(job)
	assert.Nil(err)
	assert.Nil(resp) // async submissions return without a response

	waitTillNoJobsInExecution(svc.Monitor)

	stats := svc.Stats()
	assert.NotNil(stats)
	assert.Zero(stats.JobsInExecution)
	assert.Positive(stats.JobsSubmitted)
	assert.Positive(stats.AsyncJobsSubmitted)
	assert.Positive(stats.SteinJobsDone)
	assert.True(stats.TotalComputeTimeNs >= 0)

	util.Log(string(svc.GetData().Data))
}

func TestServiceCloneCfg(t *testing.T) {
	assert := assert.New(t)

	cfg := svc.CloneCfg()
	assert.Equal(svc.CfgInUse.Pool, cfg.Pool)

	cfg.Pool.AsyncWorkerCount = 1
	cfg.Pool.BlockingWorkerCount = 1
	cfg.Worker.JobQueueCapacity = 1
	assert.NotEqual(svc.CfgInUse.Pool, cfg.Pool)

	second := cfg.MakeServiceFromCfg()
	second.Start()
	defer second.Stop()

	job, err := NewGcdJob(AlgoEuclid, true, 17, 5)
	assert.Nil(err)
	resp, err := second.Submit(job)
	assert.Nil(err)
	assert.Equal(int32(1), resp.Gcd)
}

func waitTillNoJobsInExecution(monitor *util.Monitor) {
	for {
		blob := <-monitor.MonDataChan
		stats := parseStats(blob.Data)
		if stats != nil && stats.JobsInExecution == 0 {
			return
		}
	}
}
