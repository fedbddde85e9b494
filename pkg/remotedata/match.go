package remotedata

// Matcher supplies one branch per variant. A type missing any of the four
// methods does not satisfy the interface, so every Match call site handles
// every variant.
type Matcher[E, T, R any] interface {
	NotAsked() R
	Loading() R
	Failed(err E) R
	Success(value T) R
}

type cases[E, T, R any] struct {
	notAsked func() R
	loading  func() R
	failed   func(err E) R
	success  func(value T) R
}

func (c cases[E, T, R]) NotAsked() R { return c.notAsked() }
func (c cases[E, T, R]) Loading() R { return c.loading() }
func (c cases[E, T, R]) Failed(err E) R { return c.failed(err) }
func (c cases[E, T, R]) Success(value T) R { return c.success(value) }

// Cases builds a Matcher from plain functions, one per variant.
func Cases[E, T, R any](
	notAsked func() R,
	loading func() R,
	failed func(err E) R,
	success func(value T) R) Matcher[E, T, R] {

	return cases[E, T, R]{
		notAsked: notAsked,
		loading:  loading,
		failed:   failed,
		success:  success,
	}
}

// Match calls the branch of m selected by the variant of rd and returns its
// result.
func Match[E, T, R any](m Matcher[E, T, R], rd RemoteData[E, T]) R {
	switch rd.state {
	case StateNotAsked:
		return m.NotAsked()
	case StateLoading:
		return m.Loading()
	case StateFailed:
		return m.Failed(rd.err)
	case StateSuccess:
		return m.Success(rd.value)
	}
	// states are only set by the constructors of this package
	panic("remotedata: unknown state " + rd.state.String())
}
