// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/umeshgeeta/gcdengine/gcd"
)

func TestNewGcdJobNeedsTwoOperands(t *testing.T) {
	assert := assert.New(t)

	_, err := NewGcdJob(AlgoEuclid, true)
	assert.NotNil(err)

	_, err = NewGcdJob(AlgoEuclid, true, 42)
	assert.NotNil(err)

	j, err := NewGcdJob(AlgoEuclid, true, 42, 56)
	assert.Nil(err)
	assert.Equal([]int32{42, 56}, j.Operands())
}

func TestGcdJobRun(t *testing.T) {
	assert := assert.New(t)

	j, err := NewGcdJob(AlgoEuclid, true, 48, 18)
	assert.Nil(err)
	resp := j.Run()
	assert.Equal(JobStatusDone, resp.Status)
	assert.Equal(int32(6), resp.Gcd)
	assert.Equal(AlgoEuclid, resp.Algo)
	assert.True(resp.Elapsed >= 0)

	j, err = NewGcdJob(AlgoStein, false, 12, 18, 24)
	assert.Nil(err)
	resp = j.Run()
	assert.Equal(JobStatusDone, resp.Status)
	assert.Equal(int32(6), resp.Gcd)
	assert.Equal(AlgoStein, resp.Algo)
}

func TestGcdJobRunGuardFailure(t *testing.T) {
	assert := assert.New(t)

	j, err := NewGcdJob(AlgoStein, true, 0, 0)
	assert.Nil(err)
	resp := j.Run()
	assert.Equal(JobStatusFailed, resp.Status)
	assert.Equal(gcd.ErrAllZero, errors.Cause(resp.Err))
}

func TestAlgorithmString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("euclid", AlgoEuclid.String())
	assert.Equal("stein", AlgoStein.String())
}
