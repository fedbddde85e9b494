package remotedata

import "fmt"

// State tags the variant a RemoteData value is in.
type State uint8

const (
	StateNotAsked State = iota // no fetch attempted yet
	StateLoading               // fetch in progress
	StateSuccess               // fetch completed with a value
	StateFailed                // fetch completed with an error
)

func (s State) String() string {
	switch s {
	case StateNotAsked:
		return "NotAsked"
	case StateLoading:
		return "Loading"
	case StateSuccess:
		return "Success"
	case StateFailed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// RemoteData is the state of a remote resource of type T whose failures are
// described by E. The zero value is NotAsked.
//
// Values are immutable: every combinator returns a new value.
type RemoteData[E, T any] struct {
	state State
	value T
	err   E
}

func NotAsked[E, T any]() RemoteData[E, T] {
	return RemoteData[E, T]{state: StateNotAsked}
}

func Loading[E, T any]() RemoteData[E, T] {
	return RemoteData[E, T]{state: StateLoading}
}

// Success wraps value. The error type has to be given explicitly:
//
//	remotedata.Success[error](42)
func Success[E, T any](value T) RemoteData[E, T] {
	return RemoteData[E, T]{
		state: StateSuccess,
		value: value,
	}
}

// Failed wraps err. The success type has to be given explicitly:
//
//	remotedata.Failed[int](errors.New("timeout"))
func Failed[T, E any](err E) RemoteData[E, T] {
	return RemoteData[E, T]{
		state: StateFailed,
		err:   err,
	}
}

func (rd RemoteData[E, T]) State() State {
	return rd.state
}

func (rd RemoteData[E, T]) IsNotAsked() bool {
	return rd.state == StateNotAsked
}

func (rd RemoteData[E, T]) IsLoading() bool {
	return rd.state == StateLoading
}

func (rd RemoteData[E, T]) IsSuccess() bool {
	return rd.state == StateSuccess
}

func (rd RemoteData[E, T]) IsFailure() bool {
	return rd.state == StateFailed
}

// Value returns the success payload; ok is false for any other variant.
func (rd RemoteData[E, T]) Value() (value T, ok bool) {
	if rd.state == StateSuccess {
		return rd.value, true
	}
	return value, false
}

// Err returns the error payload; ok is false for any other variant.
func (rd RemoteData[E, T]) Err() (err E, ok bool) {
	if rd.state == StateFailed {
		return rd.err, true
	}
	return err, false
}

func (rd RemoteData[E, T]) String() string {
	switch rd.state {
	case StateSuccess:
		return fmt.Sprintf("Success(%v)", rd.value)
	case StateFailed:
		return fmt.Sprintf("Failed(%v)", rd.err)
	}
	return rd.state.String()
}
