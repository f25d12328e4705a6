package config

import "regexp"

// Masked replaces a secret value in logs and diagnostics.
const Masked = "***"

var reSecret = regexp.MustCompile(`(?i)(password|passwd|secret|token|api[_-]?key)`)

// IsSecret reports whether a key or slot name denotes a credential.
func IsSecret(name string) bool {
	return reSecret.MatchString(name)
}

// Redact returns a deep copy of tree with secret values masked.
func (t Tree) Redact() Tree {
	ret := make(Tree, len(t))
	for key, value := range t {
		switch actual := value.(type) {
		case Tree:
			ret[key] = actual.Redact()
		default:
			if IsSecret(key) {
				ret[key] = Masked
				continue
			}
			ret[key] = actual
		}
	}
	return ret
}

// Redact returns a copy of values with secret slots masked.
func (v Values) Redact() Values {
	ret := v.Clone()
	for slot := range ret {
		if IsSecret(slot) {
			ret[slot] = Masked
		}
	}
	return ret
}
