package naru

import (
	"reflect"
	"strings"
)

// dedupe returns the elements of the slice rv in order, keeping the first
// occurrence of each value. Comparable elements are hashed; the rest are
// compared with reflect.DeepEqual.
func dedupe(rv reflect.Value) reflect.Value {
	if rv.IsNil() {
		return rv
	}
	seen := make(map[any]struct{}, rv.Len())
	var loose []any
	out := reflect.MakeSlice(rv.Type(), 0, rv.Len())
	for i := range rv.Len() {
		v := rv.Index(i)
		if v.Comparable() {
			k := v.Interface()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
		} else {
			k := v.Interface()
			if containsDeep(loose, k) {
				continue
			}
			loose = append(loose, k)
		}
		out = reflect.Append(out, v)
	}
	return out
}

func containsDeep(vs []any, v any) bool {
	for _, x := range vs {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}

func dedupeString(s string) string {
	seen := make(map[rune]struct{}, len(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}

// DropDuplicatesFromSlice removes repeated elements of s, keeping the first.
func DropDuplicatesFromSlice[S ~[]E, E any](s S) S {
	return dedupe(reflect.ValueOf(s)).Interface().(S)
}

// DropDuplicatesFromString removes repeated runes of s, keeping the first.
func DropDuplicatesFromString(s string) string {
	return dedupeString(s)
}
