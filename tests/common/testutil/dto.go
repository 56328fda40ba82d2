//go:build unit || e2e

// Package testutil turns request DTOs into mutable JSON maps for binding tests.
package testutil

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets a value at a dotted path such as "rooms.0.capacity". A nil value
// deletes the key. Paths that do not resolve are left untouched.
func Field(path string, value any) func(map[string]any) {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		var cur any = m
		for _, k := range keys[:len(keys)-1] {
			cur = step(cur, k)
			if cur == nil {
				return
			}
		}
		last := keys[len(keys)-1]
		switch node := cur.(type) {
		case map[string]any:
			if value == nil {
				delete(node, last)
			} else {
				node[last] = value
			}
		case []any:
			if i, err := strconv.Atoi(last); err == nil && i >= 0 && i < len(node) {
				node[i] = value
			}
		}
	}
}

func step(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key]
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return nil
		}
		return n[i]
	}
	return nil
}
