// Package stream carries the successive states of one remote resource over
// channels. A producer (whatever performs the fetch) sends NotAsked, Loading
// and finally Success or Failed; consumers transform and observe the sequence
// with the same algebra as single values.
//
// Highlights:
// - Update/Stamp/Carry: a RemoteData stamped with a uuid and creation time
// - FromStates: emit a fixed sequence of states
// - Lift/Map/MapError/AndThen: transform every update, in order
// - Collect/Latest/Settled: consume a stream
// - WithBuffer: configure channel buffering through the context
//
// The package relays values only; it does not fetch, retry or cache.
package stream
