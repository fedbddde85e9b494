package remotedata

import "errors"

// FromResult lifts a Go (value, error) pair. A nil error, including a typed nil
// pointer, gives Success.
func FromResult[T any](value T, err error) RemoteData[error, T] {
	if IsNil(err) {
		return Success[error](value)
	}
	return Failed[T](err)
}

// Map2 combines two values. The first Failed wins (a before b), then Loading,
// then NotAsked; fn runs only when both are Success.
func Map2[E, A, B, C any](fn func(a A, b B) C, a RemoteData[E, A], b RemoteData[E, B]) RemoteData[E, C] {
	switch {
	case a.state == StateFailed:
		return RemoteData[E, C]{state: StateFailed, err: a.err}
	case b.state == StateFailed:
		return RemoteData[E, C]{state: StateFailed, err: b.err}
	case a.state == StateLoading || b.state == StateLoading:
		return Loading[E, C]()
	case a.state == StateNotAsked || b.state == StateNotAsked:
		return NotAsked[E, C]()
	}
	return Success[E](fn(a.value, b.value))
}

// Collect turns a list of values into a value of a list, with Map2 precedence.
func Collect[E, T any](rds ...RemoteData[E, T]) RemoteData[E, []T] {
	acc := Success[E](make([]T, 0, len(rds)))
	for _, rd := range rds {
		acc = Map2(func(values []T, v T) []T {
			return append(values, v)
		}, acc, rd)
	}
	return acc
}

// CollectAll is Collect that does not stop at the first Failed: the errors of
// every Failed value are joined. Without failures it behaves like Collect.
func CollectAll[T any](rds ...RemoteData[error, T]) RemoteData[error, []T] {
	var errs []error
	for _, rd := range rds {
		if rd.state == StateFailed {
			errs = append(errs, GetErrors(rd.err)...)
		}
	}

	if len(errs) > 0 {
		return Failed[[]T](errors.Join(errs...))
	}
	return Collect(rds...)
}

// Tee calls onSuccess with the payload of a Success and returns rd unchanged.
func Tee[E, T any](rd RemoteData[E, T], onSuccess func(value T)) RemoteData[E, T] {
	if rd.state == StateSuccess {
		onSuccess(rd.value)
	}
	return rd
}
