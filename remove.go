package naru

import "strings"

func substringDropper(sub string) func(string) string {
	if sub == "" {
		return func(s string) string { return s }
	}
	return func(s string) string { return strings.ReplaceAll(s, sub, "") }
}

func bindDropSubstring(params []any) (func(string) string, error) {
	sub, err := bindSubstring(OpDropSubstring, params)
	if err != nil {
		return nil, err
	}
	return substringDropper(sub), nil
}

// DropSubstringFromString removes every non-overlapping occurrence of sub from s.
// An empty sub leaves s unchanged.
func DropSubstringFromString(s, sub string) string {
	return substringDropper(sub)(s)
}

// DropSubstringFromMap removes sub from every key of m.
func DropSubstringFromMap[M ~map[K]V, K comparable, V any](m M, sub string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropSubstring, substringDropper(sub), false, opts))
}

// DropSubstringFromValues removes sub from every value of m.
func DropSubstringFromValues[M ~map[K]V, K comparable, V any](m M, sub string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropSubstring, substringDropper(sub), true, opts))
}

// DropSubstringFromSlice removes sub from every element of s.
func DropSubstringFromSlice[S ~[]E, E any](s S, sub string, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpDropSubstring, substringDropper(sub), false, opts))
}

// DropSubstringFromSet removes sub from every member of s.
func DropSubstringFromSet[S ~map[E]struct{}, E comparable](s S, sub string, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpDropSubstring, substringDropper(sub), false, opts))
}

// DropSubstringFromArray removes sub from every element of a.
func DropSubstringFromArray[A any](a A, sub string, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpDropSubstring, substringDropper(sub), false, opts))
}
