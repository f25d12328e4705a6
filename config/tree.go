package config

import (
	"net/url"
	"strings"
)

// Separator splits a query key into tree path segments.
const Separator = "."

var reserved = map[string]bool{
	"api_key": true,
	"profile": true,
}

// IsReserved reports whether key carries transport/auth metadata rather than configuration.
func IsReserved(key string) bool {
	return reserved[key]
}

// Tree represents nested configuration; each value is either a string or a Tree.
type Tree map[string]interface{}

// Lookup returns a top level scalar value.
func (t Tree) Lookup(key string) (interface{}, bool) {
	value, ok := t[key]
	if !ok {
		return nil, false
	}
	if _, nested := value.(Tree); nested {
		return nil, false
	}
	return value, true
}

// Set assigns value at dot separated key, replacing any scalar found on the way with a nested Tree.
func (t Tree) Set(key string, value interface{}) {
	parts := strings.Split(key, Separator)
	current := t
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(Tree)
		if !ok {
			next = Tree{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// Extract parses a raw query string into a Tree.
// Reserved keys are skipped, the first value of a repeated key wins, and
// conflicting shapes are resolved last-write-wins in order of first appearance.
func Extract(rawQuery string) Tree {
	ret := Tree{}
	for _, param := range parseQuery(rawQuery) {
		if IsReserved(param.key) {
			continue
		}
		ret.Set(param.key, param.value)
	}
	return ret
}

type queryParam struct {
	key   string
	value string
}

// parseQuery decodes rawQuery keeping the first value per key, in order of the key's first appearance.
func parseQuery(rawQuery string) []queryParam {
	var ret []queryParam
	seen := map[string]bool{}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		ret = append(ret, queryParam{key: key, value: value})
	}
	return ret
}
