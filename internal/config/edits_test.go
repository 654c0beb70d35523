package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SimpleEdit ────────────────────────────────────────────────────────────────

func TestSimpleEdit_InjectsNewKey(t *testing.T) {
	cfg := map[string]any{}

	err := SimpleEdit{Address: []string{"app", "name"}, Value: "test-app"}.Apply(cfg)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"app": map[string]any{"name": "test-app"}}, cfg)
}

func TestSimpleEdit_ReplacesExisting(t *testing.T) {
	cfg := map[string]any{"app": map[string]any{"name": "old-app", "version": "1.0"}}

	err := SimpleEdit{Address: []string{"app", "name"}, Value: "new-app"}.Apply(cfg)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"app": map[string]any{"name": "new-app", "version": "1.0"}}, cfg)
}

func TestSimpleEdit_DeepNesting(t *testing.T) {
	cfg := map[string]any{}

	err := SimpleEdit{Address: []string{"app", "database", "connection", "host"}, Value: "localhost"}.Apply(cfg)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"app": map[string]any{"database": map[string]any{"connection": map[string]any{"host": "localhost"}}},
	}, cfg)
}

func TestSimpleEdit_ThroughScalarFails(t *testing.T) {
	cfg := map[string]any{"app": "flat"}

	err := SimpleEdit{Address: []string{"app", "name"}, Value: "x"}.Apply(cfg)

	assert.ErrorIs(t, err, ErrAddressLocate)
	assert.Equal(t, "flat", cfg["app"])
}

func TestSimpleEdit_EmptyAddress(t *testing.T) {
	err := SimpleEdit{Value: "x"}.Apply(map[string]any{})
	assert.ErrorIs(t, err, ErrAddressLocate)
}

func TestSimpleEdit_Dereference(t *testing.T) {
	cfg := map[string]any{"app": map[string]any{"name": "test-app", "version": "1.0"}}

	value, err := SimpleEdit{Address: []string{"app", "name"}}.Dereference(cfg)
	require.NoError(t, err)
	assert.Equal(t, "test-app", value)

	_, err = SimpleEdit{Address: []string{"app", "missing"}}.Dereference(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAddressLocate)
	assert.Contains(t, err.Error(), "missing")
	assert.Contains(t, err.Error(), "configuration dictionary")

	_, err = SimpleEdit{Address: []string{"app", "database", "host"}}.Dereference(cfg)
	var locateErr *AddressLocateError
	require.True(t, errors.As(err, &locateErr))
	assert.Equal(t, "database", locateErr.Part)
}

// ── ElementsEntryEdit ─────────────────────────────────────────────────────────

func TestElementsEntryEdit_AllElements(t *testing.T) {
	cfg := map[string]any{
		"servers": []map[string]any{
			{"name": "server1", "enabled": false},
			{"name": "server2", "enabled": false},
		},
	}

	err := ElementsEntryEdit{Address: []string{"servers"}, Editee: Entry{Key: "enabled", Value: true}}.Apply(cfg)

	require.NoError(t, err)
	for _, server := range cfg["servers"].([]map[string]any) {
		assert.Equal(t, true, server["enabled"])
	}
}

func TestElementsEntryEdit_WithIdentifier(t *testing.T) {
	cfg := map[string]any{
		"servers": []any{
			map[string]any{"name": "web-server", "type": "web", "enabled": false, "created": "2023-01-01"},
			map[string]any{"name": "db-server", "type": "database", "enabled": false},
			map[string]any{"name": "cache-server", "type": "web", "enabled": false},
		},
	}
	edit := ElementsEntryEdit{
		Address:    []string{"servers"},
		Editee:     Entry{Key: "enabled", Value: true},
		Identifier: &Entry{Key: "type", Value: "web"},
	}

	require.NoError(t, edit.Apply(cfg))

	servers := cfg["servers"].([]any)
	assert.Equal(t, true, servers[0].(map[string]any)["enabled"])
	assert.Equal(t, "2023-01-01", servers[0].(map[string]any)["created"])
	assert.Equal(t, false, servers[1].(map[string]any)["enabled"])
	assert.Equal(t, true, servers[2].(map[string]any)["enabled"])
}

func TestElementsEntryEdit_MissingIdentifier(t *testing.T) {
	cfg := map[string]any{
		"servers": []map[string]any{
			{"name": "server1"},
			{"name": "server2", "type": "web"},
		},
	}
	edit := ElementsEntryEdit{
		Address:    []string{"servers"},
		Editee:     Entry{Key: "enabled", Value: true},
		Identifier: &Entry{Key: "type", Value: "web"},
	}

	err := edit.Apply(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryAssertion)
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "configuration array element")
}

func TestElementsEntryEdit_NotAnArray(t *testing.T) {
	cfg := map[string]any{"servers": "none"}
	err := ElementsEntryEdit{Address: []string{"servers"}, Editee: Entry{Key: "a", Value: 1}}.Apply(cfg)
	assert.ErrorIs(t, err, ErrEntryAssertion)

	err = ElementsEntryEdit{Address: []string{"absent"}, Editee: Entry{Key: "a", Value: 1}}.Apply(cfg)
	assert.ErrorIs(t, err, ErrAddressLocate)
}
