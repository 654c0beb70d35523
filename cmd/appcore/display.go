// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/emcd/appcore/models"
	"github.com/muesli/termenv"
)

// presentation is the output format of the introspection commands.
type presentation string

const (
	presentationJSON  presentation = "json"
	presentationPlain presentation = "plain"
	presentationRich  presentation = "rich"
	presentationTOML  presentation = "toml"
)

func (p presentation) String() string {
	return string(p)
}

func (p *presentation) Set(s string) error {
	switch v := presentation(strings.ToLower(s)); v {
	case presentationJSON, presentationPlain, presentationRich, presentationTOML:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown presentation %q (want json, plain, rich or toml)", s)
}

func (p *presentation) Type() string {
	return "presentation"
}

type display struct {
	presentation presentation
	color        models.EnablementTristate
}

func newDisplay() display {
	return display{presentation: presentationRich, color: models.EnablementRetain}
}

func (d display) render(w io.Writer, data map[string]any) error {
	switch d.presentation {
	case presentationJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(data)
	case presentationTOML:
		return toml.NewEncoder(w).Encode(data)
	case presentationRich:
		if d.colorize(w) {
			return renderRich(w, data, termenv.ANSI256)
		}
	}
	return renderPlain(w, data)
}

// colorize reports whether rich output should carry color. Retain defers
// to the terminal, honoring NO_COLOR.
func (d display) colorize(w io.Writer) bool {
	if enabled, err := d.color.Bool(); err == nil {
		return enabled
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func renderPlain(w io.Writer, data map[string]any) error {
	for _, key := range sortedKeys(data) {
		if _, err := fmt.Fprintf(w, "%s: %v\n", key, data[key]); err != nil {
			return err
		}
	}
	return nil
}

var (
	keyColor    = lipgloss.Color("39")
	stringColor = lipgloss.Color("114")
	scalarColor = lipgloss.Color("215")
)

func renderRich(w io.Writer, data map[string]any, profile termenv.Profile) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	styles := richStyles{
		key:    r.NewStyle().Foreground(keyColor).Bold(true),
		str:    r.NewStyle().Foreground(stringColor),
		scalar: r.NewStyle().Foreground(scalarColor),
	}

	var b strings.Builder
	styles.table(&b, data, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

type richStyles struct {
	key    lipgloss.Style
	str    lipgloss.Style
	scalar lipgloss.Style
}

func (s richStyles) table(b *strings.Builder, data map[string]any, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range sortedKeys(data) {
		b.WriteString(indent + s.key.Render(key) + ":")
		switch v := data[key].(type) {
		case map[string]any:
			b.WriteString("\n")
			s.table(b, v, depth+1)
		case []map[string]any:
			b.WriteString("\n")
			for _, item := range v {
				b.WriteString(indent + "  -\n")
				s.table(b, item, depth+2)
			}
		default:
			b.WriteString(" " + s.value(v) + "\n")
		}
	}
}

func (s richStyles) value(v any) string {
	switch v := v.(type) {
	case string:
		return s.str.Render(fmt.Sprintf("%q", v))
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, s.value(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return s.scalar.Render(fmt.Sprint(v))
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
