package config

// DefaultPrefix is prepended to every slot name of DefaultMapping.
const DefaultPrefix = "MSSQL_"

// Binding associates a top level Tree key with a configuration slot.
type Binding struct {
	Key  string
	Slot string
}

// Mapping is an ordered, closed set of bindings.
type Mapping []Binding

// DefaultMapping returns the bindings recognised by the database backend, with slots prefixed by prefix.
func DefaultMapping(prefix string) Mapping {
	return Mapping{
		{Key: "server", Slot: prefix + "SERVER"},
		{Key: "database", Slot: prefix + "DATABASE"},
		{Key: "user", Slot: prefix + "USER"},
		{Key: "password", Slot: prefix + "PASSWORD"},
		{Key: "port", Slot: prefix + "PORT"},
		{Key: "windowsAuth", Slot: prefix + "WINDOWS_AUTH"},
		{Key: "encrypt", Slot: prefix + "ENCRYPT"},
	}
}

// Slot returns the slot bound to key.
func (m Mapping) Slot(key string) (string, bool) {
	for _, binding := range m {
		if binding.Key == key {
			return binding.Slot, true
		}
	}
	return "", false
}

// Key returns the tree key bound to slot.
func (m Mapping) Key(slot string) (string, bool) {
	for _, binding := range m {
		if binding.Slot == slot {
			return binding.Key, true
		}
	}
	return "", false
}

// Slots returns all slot names in binding order.
func (m Mapping) Slots() []string {
	ret := make([]string, 0, len(m))
	for _, binding := range m {
		ret = append(ret, binding.Slot)
	}
	return ret
}
