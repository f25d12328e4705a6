package config

import (
	"context"
	"os"
	"sort"

	"github.com/viant/mcphttp/internal/collection"
)

// Values holds configuration slots visible to a single request.
type Values map[string]string

// Set assigns slot value.
func (v Values) Set(slot, value string) {
	v[slot] = value
}

// Get returns slot value.
func (v Values) Get(slot string) (string, bool) {
	value, ok := v[slot]
	return value, ok
}

// Slots returns the assigned slot names sorted.
func (v Values) Slots() []string {
	ret := make([]string, 0, len(v))
	for slot := range v {
		ret = append(ret, slot)
	}
	sort.Strings(ret)
	return ret
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	ret := make(Values, len(v))
	for slot, value := range v {
		ret[slot] = value
	}
	return ret
}

// SharedStore is a process wide store; its content outlives any request.
type SharedStore interface {
	Store
	Get(slot string) (string, bool)
	Snapshot() Values
}

// Shared is an in-memory process wide store.
type Shared struct {
	slots *collection.SyncMap[string, string]
}

// Set assigns slot value.
func (s *Shared) Set(slot, value string) {
	s.slots.Put(slot, value)
}

// Get returns slot value.
func (s *Shared) Get(slot string) (string, bool) {
	return s.slots.Get(slot)
}

// Snapshot returns a copy of all slots.
func (s *Shared) Snapshot() Values {
	ret := make(Values, s.slots.Len())
	s.slots.Range(func(slot string, value string) bool {
		ret[slot] = value
		return true
	})
	return ret
}

// NewShared creates an empty shared store.
func NewShared() *Shared {
	return &Shared{slots: collection.NewSyncMap[string, string]()}
}

// Environment stores slots as process environment variables.
type Environment struct {
	slots []string
}

// Set exports slot as an environment variable.
func (e *Environment) Set(slot, value string) {
	_ = os.Setenv(slot, value)
}

// Get returns the environment variable named slot.
func (e *Environment) Get(slot string) (string, bool) {
	return os.LookupEnv(slot)
}

// Snapshot returns the currently exported mapped slots.
func (e *Environment) Snapshot() Values {
	ret := Values{}
	for _, slot := range e.slots {
		if value, ok := os.LookupEnv(slot); ok {
			ret[slot] = value
		}
	}
	return ret
}

// NewEnvironment creates an environment backed store covering mapping slots.
func NewEnvironment(mapping Mapping) *Environment {
	return &Environment{slots: mapping.Slots()}
}

type valuesKey struct{}

// WithValues returns ctx carrying values.
func WithValues(ctx context.Context, values Values) context.Context {
	return context.WithValue(ctx, valuesKey{}, values)
}

// FromContext returns the configuration carried by ctx, or empty Values.
func FromContext(ctx context.Context) Values {
	if values, ok := ctx.Value(valuesKey{}).(Values); ok && values != nil {
		return values
	}
	return Values{}
}
