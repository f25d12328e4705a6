package config

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	mapping := DefaultMapping(DefaultPrefix)
	var testCases = []struct {
		description string
		tree        Tree
		initial     Values
		expect      Values
		expectSet   []string
	}{
		{
			description: "server and port",
			tree:        Tree{"server": "s1", "port": "1433"},
			initial:     Values{"MSSQL_USER": "sa"},
			expect:      Values{"MSSQL_SERVER": "s1", "MSSQL_PORT": "1433", "MSSQL_USER": "sa"},
			expectSet:   []string{"MSSQL_SERVER", "MSSQL_PORT"},
		},
		{
			description: "all keys",
			tree: Tree{"server": "s", "database": "d", "user": "u", "password": "p",
				"port": "1", "windowsAuth": "true", "encrypt": "false"},
			initial: Values{},
			expect: Values{"MSSQL_SERVER": "s", "MSSQL_DATABASE": "d", "MSSQL_USER": "u", "MSSQL_PASSWORD": "p",
				"MSSQL_PORT": "1", "MSSQL_WINDOWS_AUTH": "true", "MSSQL_ENCRYPT": "false"},
			expectSet: []string{"MSSQL_SERVER", "MSSQL_DATABASE", "MSSQL_USER", "MSSQL_PASSWORD",
				"MSSQL_PORT", "MSSQL_WINDOWS_AUTH", "MSSQL_ENCRYPT"},
		},
		{
			description: "unmapped and nested keys ignored",
			tree:        Tree{"other": "x", "server": Tree{"host": "h"}},
			initial:     Values{"MSSQL_SERVER": "old"},
			expect:      Values{"MSSQL_SERVER": "old"},
		},
		{
			description: "overwrite",
			tree:        Tree{"server": "new"},
			initial:     Values{"MSSQL_SERVER": "old"},
			expect:      Values{"MSSQL_SERVER": "new"},
			expectSet:   []string{"MSSQL_SERVER"},
		},
		{
			description: "typed values coerced",
			tree:        Tree{"port": json.Number("1433"), "encrypt": true, "windowsAuth": false, "server": 1.5},
			initial:     Values{},
			expect:      Values{"MSSQL_PORT": "1433", "MSSQL_ENCRYPT": "true", "MSSQL_WINDOWS_AUTH": "false", "MSSQL_SERVER": "1.5"},
			expectSet:   []string{"MSSQL_SERVER", "MSSQL_PORT", "MSSQL_WINDOWS_AUTH", "MSSQL_ENCRYPT"},
		},
	}
	for _, testCase := range testCases {
		store := testCase.initial.Clone()
		set := Apply(context.Background(), testCase.tree, mapping, store)
		assert.EqualValues(t, testCase.expect, store, testCase.description)
		assert.EqualValues(t, testCase.expectSet, set, testCase.description)
	}
}

func TestApply_Shared(t *testing.T) {
	store := NewShared()
	store.Set("MSSQL_DATABASE", "keep")
	Apply(context.Background(), Extract("server=s1&port=1433"), DefaultMapping(DefaultPrefix), store)
	assert.Equal(t, Values{"MSSQL_SERVER": "s1", "MSSQL_PORT": "1433", "MSSQL_DATABASE": "keep"}, store.Snapshot())
}

func TestApply_Environment(t *testing.T) {
	mapping := DefaultMapping("MCPHTTP_TEST_")
	t.Setenv("MCPHTTP_TEST_SERVER", "")
	t.Setenv("MCPHTTP_TEST_PORT", "")
	store := NewEnvironment(mapping)
	Apply(context.Background(), Extract("server=s1&port=1433"), mapping, store)
	value, ok := store.Get("MCPHTTP_TEST_SERVER")
	require.True(t, ok)
	assert.Equal(t, "s1", value)
	snapshot := store.Snapshot()
	assert.Equal(t, "1433", snapshot["MCPHTTP_TEST_PORT"])
	_, ok = snapshot["MCPHTTP_TEST_USER"]
	assert.False(t, ok)
}

func TestMapping(t *testing.T) {
	mapping := DefaultMapping("X_")
	slot, ok := mapping.Slot("windowsAuth")
	assert.True(t, ok)
	assert.Equal(t, "X_WINDOWS_AUTH", slot)
	key, ok := mapping.Key("X_ENCRYPT")
	assert.True(t, ok)
	assert.Equal(t, "encrypt", key)
	_, ok = mapping.Slot("unknown")
	assert.False(t, ok)
	assert.Len(t, mapping.Slots(), 7)
}
