package chain

import (
	"github.com/ib-77/remotedata/pkg/remotedata"
)

type Chain[E, T any] struct {
	rd remotedata.RemoteData[E, T]
}

func Start[E, T any](rd remotedata.RemoteData[E, T]) Chain[E, T] {
	return Chain[E, T]{rd: rd}
}

// FromValue starts a chain from a Success. The error type has to be given
// explicitly: chain.FromValue[error](42).
func FromValue[E, T any](v T) Chain[E, T] {
	return Start(remotedata.Success[E](v))
}

func (c Chain[E, T]) Result() remotedata.RemoteData[E, T] {
	return c.rd
}

// Then composes functions that already return a RemoteData of the same types.
func (c Chain[E, T]) Then(onSuccess func(t T) remotedata.RemoteData[E, T]) Chain[E, T] {
	return Chain[E, T]{rd: remotedata.AndThen(onSuccess, c.rd)}
}

// Map transforms the successful value.
func (c Chain[E, T]) Map(onSuccess func(t T) T) Chain[E, T] {
	return Chain[E, T]{rd: remotedata.Map(onSuccess, c.rd)}
}

// MapError transforms the error of a failed chain.
func (c Chain[E, T]) MapError(onFailure func(err E) E) Chain[E, T] {
	return Chain[E, T]{rd: remotedata.MapError(onFailure, c.rd)}
}

// Or returns the first successful chain among c and alternatives. Without a
// success the first failure is returned, then the first loading chain, and c
// otherwise.
func (c Chain[E, T]) Or(alternatives ...Chain[E, T]) Chain[E, T] {
	candidates := make([]Chain[E, T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var failed, loading *Chain[E, T]
	for i := range candidates {
		ch := &candidates[i]

		switch {
		case ch.rd.IsSuccess():
			return *ch
		case ch.rd.IsFailure():
			if failed == nil {
				failed = ch
			}
		case ch.rd.IsLoading():
			if loading == nil {
				loading = ch
			}
		}
	}

	if failed != nil {
		return *failed
	}
	if loading != nil {
		return *loading
	}

	return c
}

// And requires c and every chain in required to succeed and yields the value
// of the last one. Otherwise the first failure wins, then loading, then not
// asked.
func (c Chain[E, T]) And(required ...Chain[E, T]) Chain[E, T] {
	res := c.rd
	for _, ch := range required {
		res = remotedata.Map2(func(_ T, next T) T { return next }, res, ch.rd)
	}
	return Chain[E, T]{rd: res}
}

// Ensure triggers side effects for success or failure without changing the
// chain. Nil callbacks are skipped.
func (c Chain[E, T]) Ensure(onSuccess func(T), onFailure func(E)) Chain[E, T] {
	if v, ok := c.rd.Value(); ok && onSuccess != nil {
		onSuccess(v)
	}
	if err, ok := c.rd.Err(); ok && onFailure != nil {
		onFailure(err)
	}
	return c
}

func (c Chain[E, T]) WithDefault(defaultValue T) T {
	return remotedata.WithDefault(defaultValue, c.rd)
}

// ThenTo chains a function that switches to a new success type.
func ThenTo[E, T, U any](c Chain[E, T], onSuccess func(t T) remotedata.RemoteData[E, U]) Chain[E, U] {
	return Chain[E, U]{rd: remotedata.AndThen(onSuccess, c.rd)}
}

// MapTo chains a pure transformation to a new success type.
func MapTo[E, T, U any](c Chain[E, T], onSuccess func(t T) U) Chain[E, U] {
	return Chain[E, U]{rd: remotedata.Map(onSuccess, c.rd)}
}

// Finally collapses the chain into a final value, delegating to remotedata.Match
func Finally[E, T, R any](c Chain[E, T], m remotedata.Matcher[E, T, R]) R {
	return remotedata.Match(m, c.rd)
}
