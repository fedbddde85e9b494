// Package chain provides a fluent Chain[E, T] over RemoteData[E, T] values.
//
// It wraps the remotedata combinators behind method calls so that a sequence
// of steps reads top to bottom:
// - Start/FromValue: create a Chain
// - Then/Map/MapError: compose steps that keep the success type
// - ThenTo/MapTo: switch to a new success type
// - Or/And: pick among or require several chains
// - Ensure: trigger side effects without changing the value
// - WithDefault/Finally: reduce to a concrete value
package chain
