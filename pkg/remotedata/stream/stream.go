package stream

import (
	"context"

	"github.com/ib-77/remotedata/pkg/remotedata"
)

// FromStates stamps states and emits them in order. The channel is closed
// after the last state or once ctx is done.
func FromStates[E, T any](ctx context.Context, states ...remotedata.RemoteData[E, T]) <-chan Update[E, T] {
	out := make(chan Update[E, T], GetBufferSize(ctx, 0))

	go func() {
		defer close(out)

		for _, s := range states {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- Stamp(s):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Lift applies fn to the data of every update of in, keeping order, ids and
// creation times. The returned channel is closed when in is closed or ctx is
// done.
func Lift[E, T, F, U any](ctx context.Context, in <-chan Update[E, T],
	fn func(rd remotedata.RemoteData[E, T]) remotedata.RemoteData[F, U]) <-chan Update[F, U] {

	out := make(chan Update[F, U], GetBufferSize(ctx, 0))

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-in:
				if !ok {
					return
				}

				select {
				case out <- Carry(u, fn(u.Data())):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func Map[E, T, U any](ctx context.Context, in <-chan Update[E, T],
	onSuccess func(value T) U) <-chan Update[E, U] {
	return Lift(ctx, in, func(rd remotedata.RemoteData[E, T]) remotedata.RemoteData[E, U] {
		return remotedata.Map(onSuccess, rd)
	})
}

func MapError[E, F, T any](ctx context.Context, in <-chan Update[E, T],
	onFailure func(err E) F) <-chan Update[F, T] {
	return Lift(ctx, in, func(rd remotedata.RemoteData[E, T]) remotedata.RemoteData[F, T] {
		return remotedata.MapError(onFailure, rd)
	})
}

func AndThen[E, T, U any](ctx context.Context, in <-chan Update[E, T],
	onSuccess func(value T) remotedata.RemoteData[E, U]) <-chan Update[E, U] {
	return Lift(ctx, in, func(rd remotedata.RemoteData[E, T]) remotedata.RemoteData[E, U] {
		return remotedata.AndThen(onSuccess, rd)
	})
}

// Collect drains in until it is closed or ctx is done.
func Collect[E, T any](ctx context.Context, in <-chan Update[E, T]) []Update[E, T] {
	res := make([]Update[E, T], 0)
	for {
		select {
		case u, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, u)
		case <-ctx.Done():
			return res
		}
	}
}

// Latest drains in and returns the data of the last update, or NotAsked when
// nothing arrived.
func Latest[E, T any](ctx context.Context, in <-chan Update[E, T]) remotedata.RemoteData[E, T] {
	last := remotedata.NotAsked[E, T]()
	for {
		select {
		case u, ok := <-in:
			if !ok {
				return last
			}
			last = u.Data()
		case <-ctx.Done():
			return last
		}
	}
}

// Settled waits for the first Success or Failed update. ok is false when in is
// closed or ctx is done before that.
func Settled[E, T any](ctx context.Context, in <-chan Update[E, T]) (update Update[E, T], ok bool) {
	for {
		select {
		case u, open := <-in:
			if !open {
				return update, false
			}
			if u.IsSettled() {
				return u, true
			}
		case <-ctx.Done():
			return update, false
		}
	}
}
