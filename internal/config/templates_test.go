package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDirectories struct {
	cache, config, data, state, home string
}

func (d fakeDirectories) UserCacheDir() string  { return d.cache }
func (d fakeDirectories) UserConfigDir() string { return d.config }
func (d fakeDirectories) UserDataDir() string   { return d.data }
func (d fakeDirectories) UserStateDir() string  { return d.state }
func (d fakeDirectories) UserHomeDir() string   { return d.home }

func testDirectories() fakeDirectories {
	return fakeDirectories{
		cache:  "/home/user/.cache/demo",
		config: "/home/user/.config/demo",
		data:   "/home/user/.local/share/demo",
		state:  "/home/user/.local/state/demo",
		home:   "/home/user",
	}
}

func TestTemplateVariables(t *testing.T) {
	vars := TemplateVariables("demo", testDirectories())
	assert.Equal(t, map[string]string{
		"application_name":   "demo",
		"user_cache":         "/home/user/.cache/demo",
		"user_configuration": "/home/user/.config/demo",
		"user_data":          "/home/user/.local/share/demo",
		"user_home":          "/home/user",
		"user_state":         "/home/user/.local/state/demo",
	}, vars)

	assert.Equal(t, map[string]string{"application_name": "demo"}, TemplateVariables("demo", nil))
}

// TestTemplateResolver_ApplicationName covers a path string resolving to a
// path containing the application name.
func TestTemplateResolver_ApplicationName(t *testing.T) {
	r := NewTemplateResolver(TemplateVariables("demo", testDirectories()))

	got := r.ResolveString("{user_data}/{application_name}/cache.db")

	assert.Equal(t, "/home/user/.local/share/demo/demo/cache.db", got)
	assert.Contains(t, got, "demo")
}

// TestTemplateResolver_SinglePass verifies that text introduced by a
// substitution is not substituted again.
func TestTemplateResolver_SinglePass(t *testing.T) {
	r := NewTemplateResolver(map[string]string{
		"application_name": "{application_name}",
		"user_home":        "{application_name}",
	})

	assert.Equal(t, "{application_name}", r.ResolveString("{application_name}"))
	assert.Equal(t, "{application_name}/x", r.ResolveString("{user_home}/x"))
}

func TestTemplateResolver_UnknownPlaceholdersKept(t *testing.T) {
	r := NewTemplateResolver(map[string]string{"application_name": "demo"})
	assert.Equal(t, "{unknown}-demo", r.ResolveString("{unknown}-{application_name}"))
}

// TestTemplateResolver_Resolve verifies that every string leaf is visited,
// including arrays and arrays of tables, while keys stay untouched.
func TestTemplateResolver_Resolve(t *testing.T) {
	r := NewTemplateResolver(map[string]string{"application_name": "demo"})
	document := map[string]any{
		"{application_name}": "{application_name}",
		"count":              int64(3),
		"includes":           map[string]any{"specs": []any{"{application_name}.toml"}},
		"servers":            []map[string]any{{"name": "{application_name}-web"}},
		"nested":             []any{[]any{"{application_name}"}, int64(1)},
	}

	r.Resolve(document)

	assert.Equal(t, map[string]any{
		"{application_name}": "demo",
		"count":              int64(3),
		"includes":           map[string]any{"specs": []any{"demo.toml"}},
		"servers":            []map[string]any{{"name": "demo-web"}},
		"nested":             []any{[]any{"demo"}, int64(1)},
	}, document)
}
