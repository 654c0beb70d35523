// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
)

const (
	dictionarySubject   = "configuration dictionary"
	arrayElementSubject = "configuration array element"
)

// SimpleEdit sets Value at Address, creating intermediate tables as needed.
type SimpleEdit struct {
	Address []string
	Value   any
}

// Apply implements Edit.
func (e SimpleEdit) Apply(configuration map[string]any) error {
	if len(e.Address) == 0 {
		return fmt.Errorf("%w: empty edit address", ErrAddressLocate)
	}
	table := configuration
	for i, part := range e.Address[:len(e.Address)-1] {
		next, ok := table[part]
		if !ok {
			created := map[string]any{}
			table[part] = created
			table = created
			continue
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return &AddressLocateError{Subject: dictionarySubject, Address: e.Address, Part: e.Address[i+1]}
		}
		table = nested
	}
	table[e.Address[len(e.Address)-1]] = e.Value
	return nil
}

// Dereference returns the value currently stored at Address.
func (e SimpleEdit) Dereference(configuration map[string]any) (any, error) {
	return dereference(configuration, e.Address)
}

// Entry is a key and value pair inside a table.
type Entry struct {
	Key   string
	Value any
}

// ElementsEntryEdit sets Editee on every table of the array at Address.
// With an Identifier, only tables whose identifier entry equals the
// identifier value are edited; a table lacking the identifier entry is an
// error.
type ElementsEntryEdit struct {
	Address    []string
	Editee     Entry
	Identifier *Entry
}

// Apply implements Edit.
func (e ElementsEntryEdit) Apply(configuration map[string]any) error {
	value, err := dereference(configuration, e.Address)
	if err != nil {
		return err
	}

	var elements []map[string]any
	switch v := value.(type) {
	case []map[string]any:
		elements = v
	case []any:
		elements = make([]map[string]any, 0, len(v))
		for _, item := range v {
			table, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: array at '%v' holds non-table element", ErrEntryAssertion, e.Address)
			}
			elements = append(elements, table)
		}
	default:
		return fmt.Errorf("%w: value at '%v' is not an array", ErrEntryAssertion, e.Address)
	}

	for _, element := range elements {
		if e.Identifier != nil {
			actual, ok := element[e.Identifier.Key]
			if !ok {
				return &EntryAssertionError{Subject: arrayElementSubject, Name: e.Identifier.Key}
			}
			if !reflect.DeepEqual(actual, e.Identifier.Value) {
				continue
			}
		}
		element[e.Editee.Key] = e.Editee.Value
	}
	return nil
}

func dereference(configuration map[string]any, address []string) (any, error) {
	var current any = configuration
	for _, part := range address {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, &AddressLocateError{Subject: dictionarySubject, Address: address, Part: part}
		}
		current, ok = table[part]
		if !ok {
			return nil, &AddressLocateError{Subject: dictionarySubject, Address: address, Part: part}
		}
	}
	return current, nil
}
