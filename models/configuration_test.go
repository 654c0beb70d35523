package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuilder() map[string]any {
	return map[string]any{
		"debug": true,
		"name":  "demo",
		"locations": map[string]any{
			"cache": "/tmp/demo",
		},
		"ports":   []any{int64(80), int64(443)},
		"servers": []map[string]any{{"host": "a"}, {"host": "b"}},
	}
}

// ── Freeze ────────────────────────────────────────────────────────────────────

// TestFreeze_IgnoresLaterBuilderMutation verifies that changes to the builder
// map after freezing are not visible through the frozen configuration.
func TestFreeze_IgnoresLaterBuilderMutation(t *testing.T) {
	builder := sampleBuilder()
	cfg := Freeze(builder)

	builder["name"] = "changed"
	builder["locations"].(map[string]any)["cache"] = "/elsewhere"
	builder["ports"].([]any)[0] = int64(8080)
	builder["servers"].([]map[string]any)[0]["host"] = "z"

	name, _ := cfg.String("name")
	assert.Equal(t, "demo", name)
	cache, _ := cfg.String("locations", "cache")
	assert.Equal(t, "/tmp/demo", cache)

	ports, ok := cfg.Get("ports")
	require.True(t, ok)
	assert.Equal(t, int64(80), ports.(Array).At(0))

	servers, _ := cfg.Get("servers")
	first := servers.(Array).At(0).(Configuration)
	host, _ := first.String("host")
	assert.Equal(t, "a", host)
}

// ── accessors ─────────────────────────────────────────────────────────────────

func TestConfiguration_GetReturnsReadOnlyViews(t *testing.T) {
	cfg := Freeze(sampleBuilder())

	v, ok := cfg.Get("locations")
	require.True(t, ok)
	_, isTable := v.(Configuration)
	assert.True(t, isTable)

	v, ok = cfg.Get("ports")
	require.True(t, ok)
	arr, isArray := v.(Array)
	require.True(t, isArray)
	assert.Equal(t, 2, arr.Len())

	_, ok = cfg.Get("missing")
	assert.False(t, ok)
}

func TestConfiguration_Lookup(t *testing.T) {
	cfg := Freeze(sampleBuilder())

	v, ok := cfg.Lookup("locations", "cache")
	require.True(t, ok)
	assert.Equal(t, "/tmp/demo", v)

	_, ok = cfg.Lookup("locations", "data")
	assert.False(t, ok)

	_, ok = cfg.Lookup("name", "nested")
	assert.False(t, ok, "lookup through a scalar must fail")

	debug, ok := cfg.Bool("debug")
	require.True(t, ok)
	assert.True(t, debug)

	_, ok = cfg.String("debug")
	assert.False(t, ok, "type mismatch must report absence")
}

func TestConfiguration_KeysSorted(t *testing.T) {
	cfg := Freeze(sampleBuilder())
	assert.Equal(t, []string{"debug", "locations", "name", "ports", "servers"}, cfg.Keys())
	assert.Equal(t, 5, cfg.Len())
}

// TestConfiguration_AsMapIsDetached verifies that mutating the map returned
// by AsMap leaves the configuration untouched.
func TestConfiguration_AsMapIsDetached(t *testing.T) {
	cfg := Freeze(sampleBuilder())

	m := cfg.AsMap()
	m["name"] = "mutated"
	m["locations"].(map[string]any)["cache"] = "/mutated"

	name, _ := cfg.String("name")
	assert.Equal(t, "demo", name)
	cache, _ := cfg.String("locations", "cache")
	assert.Equal(t, "/tmp/demo", cache)
	assert.Equal(t, sampleBuilder(), cfg.AsMap())
}

func TestArray_ValuesIsDetached(t *testing.T) {
	cfg := Freeze(sampleBuilder())
	v, _ := cfg.Get("ports")
	arr := v.(Array)

	values := arr.Values()
	values[0] = int64(1)

	assert.Equal(t, int64(80), arr.At(0))
}

func TestConfiguration_ZeroValue(t *testing.T) {
	var cfg Configuration
	assert.Equal(t, 0, cfg.Len())
	assert.Empty(t, cfg.Keys())
	assert.Equal(t, map[string]any{}, cfg.AsMap())
	_, ok := cfg.Get("anything")
	assert.False(t, ok)
}

func TestConfiguration_MarshalJSON(t *testing.T) {
	cfg := Freeze(map[string]any{"a": map[string]any{"b": "c"}})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":"c"}}`, string(data))
}
