package remotedata

// Unwrap returns fn applied to the success payload, or defaultValue for
// NotAsked, Loading and Failed.
func Unwrap[E, T, U any](defaultValue U, fn func(value T) U, rd RemoteData[E, T]) U {
	if rd.state == StateSuccess {
		return fn(rd.value)
	}
	return defaultValue
}

// WithDefault returns the success payload, or defaultValue for any other variant.
func WithDefault[E, T any](defaultValue T, rd RemoteData[E, T]) T {
	return Unwrap(defaultValue, identity[T], rd)
}

// Map transforms the success payload. Other variants pass through; a Failed
// keeps its error payload as is.
func Map[E, T, U any](fn func(value T) U, rd RemoteData[E, T]) RemoteData[E, U] {
	if rd.state == StateSuccess {
		return Success[E](fn(rd.value))
	}
	return RemoteData[E, U]{state: rd.state, err: rd.err}
}

// MapError transforms the error payload. Other variants pass through; a
// Success keeps its payload as is.
func MapError[E, F, T any](fn func(err E) F, rd RemoteData[E, T]) RemoteData[F, T] {
	if rd.state == StateFailed {
		return Failed[T](fn(rd.err))
	}
	return RemoteData[F, T]{state: rd.state, value: rd.value}
}

// MapBoth is MapError(mapErr, Map(mapSuccess, rd)).
func MapBoth[E, F, T, U any](
	mapSuccess func(value T) U,
	mapErr func(err E) F,
	rd RemoteData[E, T]) RemoteData[F, U] {

	return MapError(mapErr, Map(mapSuccess, rd))
}

// AndThen replaces a Success with whatever fn returns for its payload, which
// may be any variant. Other variants pass through re-typed.
func AndThen[E, T, U any](fn func(value T) RemoteData[E, U], rd RemoteData[E, T]) RemoteData[E, U] {
	if rd.state == StateSuccess {
		return fn(rd.value)
	}
	return RemoteData[E, U]{state: rd.state, err: rd.err}
}

func identity[T any](v T) T {
	return v
}
