// Package remotedata models the state of an asynchronously fetched resource
// as a single immutable value: NotAsked, Loading, Success(T) or Failed(E).
//
// It replaces loose loading/error/data fields, whose combinations can
// contradict each other, with one closed sum type and a small algebra:
// - NotAsked/Loading/Success/Failed: construct a RemoteData[E, T]
// - IsNotAsked/IsLoading/IsSuccess/IsFailure, Value, Err: classify and read
// - Match: exhaustive elimination, one branch per variant
// - Unwrap/WithDefault: read the success payload or fall back to a default
// - Map/MapError/MapBoth: transform one or both payload channels
// - AndThen: sequence a dependent fetch on success
// - FromResult, Map2, Collect, CollectAll, Tee: interop and combination helpers
//
// The package never performs a fetch itself. A caller drives the lifecycle
// and hands each new state to the renderer or to the next step:
//
//	user := remotedata.Loading[error, User]()
//	u, err := repo.FindUser(ctx, id)
//	user = remotedata.FromResult(u, err)
//
//	title := remotedata.Match(remotedata.Cases(
//		func() string { return "" },
//		func() string { return "loading..." },
//		func(err error) string { return "failed: " + err.Error() },
//		func(u User) string { return u.Name },
//	), user)
package remotedata
