package check

import (
	"errors"
	"fmt"
)

// Pass sets the result to OK with a summary message.
func (r *Result) Pass(message string) Result {
	r.Status = StatusOK
	r.Message = message
	return *r
}

// Passf sets the result to OK with a formatted summary message.
func (r *Result) Passf(format string, args ...interface{}) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Fail sets the result to failed status with a summary message.
func (r *Result) Fail(message string, err error) Result {
	r.Status = StatusFail
	r.Message = message
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted summary message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(msg, errors.New(msg))
}

// Skip marks the result as unverifiable. The error is kept as diagnostic detail.
func (r *Result) Skip(err error) Result {
	r.Status = StatusSkip
	r.Err = err
	if err != nil {
		r.Details = append(r.Details, err.Error())
	}
	return *r
}

// Skipf marks the result as unverifiable with a wrapped error.
func (r *Result) Skipf(format string, args ...interface{}) Result {
	return r.Skip(fmt.Errorf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
