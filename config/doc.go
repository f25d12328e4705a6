// Package config turns transport-level query parameters into backend configuration.
//
// A request's query string is folded into a nested Tree using dot notation
// (`a.b=1` becomes {a:{b:"1"}}). A fixed Mapping then projects a closed set of
// top-level keys onto named configuration slots, which Apply writes into a Store.
//
// By default every request gets its own Values, carried to the backend through the
// request context (see WithValues / FromContext). Shared and Environment stores
// are process wide instead and are only safe when a process serves
// a single logical client.
package config
