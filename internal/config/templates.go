// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/emcd/appcore/models"
)

// TemplateVariables returns the placeholder table for an application.
// Placeholders whose directory is unknown are omitted and therefore left
// untouched in resolved strings.
func TemplateVariables(applicationName string, directories models.Directories) map[string]string {
	variables := map[string]string{"application_name": applicationName}
	if directories == nil {
		return variables
	}
	for name, value := range map[string]string{
		"user_cache":         directories.UserCacheDir(),
		"user_configuration": directories.UserConfigDir(),
		"user_data":          directories.UserDataDir(),
		"user_home":          directories.UserHomeDir(),
		"user_state":         directories.UserStateDir(),
	} {
		if value != "" {
			variables[name] = value
		}
	}
	return variables
}

// TemplateResolver substitutes {name} placeholders in string values.
//
// Substitution is a single pass: text introduced by a substitution is never
// itself substituted. Unknown placeholders are left as written.
type TemplateResolver struct {
	replacer *strings.Replacer
}

// NewTemplateResolver returns a resolver for variables.
func NewTemplateResolver(variables map[string]string) *TemplateResolver {
	pairs := make([]string, 0, len(variables)*2)
	for name, value := range variables {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return &TemplateResolver{replacer: strings.NewReplacer(pairs...)}
}

// ResolveString substitutes placeholders in s.
func (r *TemplateResolver) ResolveString(s string) string {
	return r.replacer.Replace(s)
}

// Resolve substitutes placeholders in every string leaf of document, in
// place, including strings inside arrays and arrays of tables. Keys are
// not touched.
func (r *TemplateResolver) Resolve(document map[string]any) {
	for key, value := range document {
		document[key] = r.resolveValue(value)
	}
}

func (r *TemplateResolver) resolveValue(value any) any {
	switch v := value.(type) {
	case string:
		return r.replacer.Replace(v)
	case map[string]any:
		r.Resolve(v)
	case []map[string]any:
		for _, table := range v {
			r.Resolve(table)
		}
	case []any:
		for i, item := range v {
			v[i] = r.resolveValue(item)
		}
	}
	return value
}
