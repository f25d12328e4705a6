package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// Store accepts configuration slot writes.
type Store interface {
	Set(slot, value string)
}

// Apply writes every mapped top level scalar of tree into store and returns the slots it set.
// Nested values under a mapped key are ignored.
func Apply(ctx context.Context, tree Tree, mapping Mapping, store Store) []string {
	var ret []string
	for _, binding := range mapping {
		value, ok := tree.Lookup(binding.Key)
		if !ok {
			if _, nested := tree[binding.Key]; nested {
				slog.DebugContext(ctx, "ignored nested configuration", "key", binding.Key)
			}
			continue
		}
		store.Set(binding.Slot, stringify(value))
		slog.InfoContext(ctx, fmt.Sprintf("Set %v from configuration", binding.Slot))
		ret = append(ret, binding.Slot)
	}
	return ret
}

func stringify(value interface{}) string {
	switch actual := value.(type) {
	case string:
		return actual
	case bool:
		return strconv.FormatBool(actual)
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32)
	case int:
		return strconv.Itoa(actual)
	case int64:
		return strconv.FormatInt(actual, 10)
	case json.Number:
		return actual.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(actual)
	}
}
