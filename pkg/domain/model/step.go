package model

import (
	"encoding/json"
	"time"
)

type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepSkipped StepStatus = "skipped"
	StepSuccess StepStatus = "success"
	StepFailed  StepStatus = "failed"
)

// StepResult is the immutable outcome of one pipeline step. Data is only meaningful when the
// status is success and Err only when it is failed.
type StepResult[T any] struct {
	status   StepStatus
	data     T
	err      string
	duration time.Duration
}

func StepSucceeded[T any](data T, elapsed time.Duration) StepResult[T] {
	return StepResult[T]{status: StepSuccess, data: data, duration: clampDuration(elapsed)}
}

func StepFailedWith[T any](msg string, elapsed time.Duration) StepResult[T] {
	return StepResult[T]{status: StepFailed, err: msg, duration: clampDuration(elapsed)}
}

func StepSkippedResult[T any]() StepResult[T] {
	return StepResult[T]{status: StepSkipped}
}

func StepPendingResult[T any]() StepResult[T] {
	return StepResult[T]{status: StepPending}
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

func (x StepResult[T]) Status() StepStatus      { return x.status }
func (x StepResult[T]) Err() string             { return x.err }
func (x StepResult[T]) Duration() time.Duration { return x.duration }
func (x StepResult[T]) Succeeded() bool         { return x.status == StepSuccess }
func (x StepResult[T]) Failed() bool            { return x.status == StepFailed }

// Data returns the payload and whether the step succeeded.
func (x StepResult[T]) Data() (T, bool) {
	if x.status != StepSuccess {
		var zero T
		return zero, false
	}
	return x.data, true
}

type stepResultJSON[T any] struct {
	Status     StepStatus `json:"status"`
	Data       *T         `json:"data,omitempty"`
	Error      string     `json:"error,omitempty"`
	DurationMS int64      `json:"durationMs"`
}

func (x StepResult[T]) MarshalJSON() ([]byte, error) {
	v := stepResultJSON[T]{
		Status:     x.status,
		DurationMS: x.duration.Milliseconds(),
	}
	switch x.status {
	case StepSuccess:
		v.Data = &x.data
	case StepFailed:
		v.Error = x.err
	}
	return json.Marshal(v)
}

func (x *StepResult[T]) UnmarshalJSON(b []byte) error {
	var v stepResultJSON[T]
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	x.status = v.Status
	x.err = v.Error
	x.duration = time.Duration(v.DurationMS) * time.Millisecond
	if v.Data != nil {
		x.data = *v.Data
	}
	return nil
}
