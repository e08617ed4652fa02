package naru

import "strings"

func prefixer(prefix, divider string) func(string) string {
	head := prefix + divider
	return func(s string) string { return head + s }
}

func suffixer(suffix, divider string) func(string) string {
	tail := divider + suffix
	return func(s string) string { return s + tail }
}

func prefixDropper(prefix, divider string) func(string) string {
	head := prefix + divider
	return func(s string) string { return strings.TrimPrefix(s, head) }
}

func suffixDropper(suffix, divider string) func(string) string {
	tail := divider + suffix
	return func(s string) string { return strings.TrimSuffix(s, tail) }
}

func affixBinder(op Operation, build func(affix, divider string) func(string) string) binder {
	return func(params []any) (func(string) string, error) {
		p, err := bindAffix(op, params)
		if err != nil {
			return nil, err
		}
		return build(p.Affix, p.Divider), nil
	}
}

// AddPrefixToString returns prefix + divider + s.
func AddPrefixToString(s, prefix, divider string) string {
	return prefixer(prefix, divider)(s)
}

// AddPrefixToMap prefixes every key of m.
func AddPrefixToMap[M ~map[K]V, K comparable, V any](m M, prefix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpAddPrefix, prefixer(prefix, divider), false, opts))
}

// AddPrefixToValues prefixes every value of m.
func AddPrefixToValues[M ~map[K]V, K comparable, V any](m M, prefix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpAddPrefix, prefixer(prefix, divider), true, opts))
}

// AddPrefixToSlice prefixes every element of s.
func AddPrefixToSlice[S ~[]E, E any](s S, prefix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpAddPrefix, prefixer(prefix, divider), false, opts))
}

// AddPrefixToSet prefixes every member of s.
func AddPrefixToSet[S ~map[E]struct{}, E comparable](s S, prefix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpAddPrefix, prefixer(prefix, divider), false, opts))
}

// AddPrefixToArray prefixes every element of the array a.
func AddPrefixToArray[A any](a A, prefix, divider string, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpAddPrefix, prefixer(prefix, divider), false, opts))
}

// AddSuffixToString returns s + divider + suffix.
func AddSuffixToString(s, suffix, divider string) string {
	return suffixer(suffix, divider)(s)
}

// AddSuffixToMap suffixes every key of m.
func AddSuffixToMap[M ~map[K]V, K comparable, V any](m M, suffix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpAddSuffix, suffixer(suffix, divider), false, opts))
}

// AddSuffixToValues suffixes every value of m.
func AddSuffixToValues[M ~map[K]V, K comparable, V any](m M, suffix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpAddSuffix, suffixer(suffix, divider), true, opts))
}

// AddSuffixToSlice suffixes every element of s.
func AddSuffixToSlice[S ~[]E, E any](s S, suffix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpAddSuffix, suffixer(suffix, divider), false, opts))
}

// AddSuffixToSet suffixes every member of s.
func AddSuffixToSet[S ~map[E]struct{}, E comparable](s S, suffix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpAddSuffix, suffixer(suffix, divider), false, opts))
}

// AddSuffixToArray suffixes every element of the array a.
func AddSuffixToArray[A any](a A, suffix, divider string, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpAddSuffix, suffixer(suffix, divider), false, opts))
}

// DropPrefixFromString removes prefix + divider from the start of s when present.
func DropPrefixFromString(s, prefix, divider string) string {
	return prefixDropper(prefix, divider)(s)
}

// DropPrefixFromMap removes prefix + divider from every key of m that has it.
func DropPrefixFromMap[M ~map[K]V, K comparable, V any](m M, prefix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropPrefix, prefixDropper(prefix, divider), false, opts))
}

// DropPrefixFromValues removes prefix + divider from every value of m that has it.
func DropPrefixFromValues[M ~map[K]V, K comparable, V any](m M, prefix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropPrefix, prefixDropper(prefix, divider), true, opts))
}

// DropPrefixFromSlice removes prefix + divider from every element of s that has it.
func DropPrefixFromSlice[S ~[]E, E any](s S, prefix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpDropPrefix, prefixDropper(prefix, divider), false, opts))
}

// DropPrefixFromSet removes prefix + divider from every member of s that has it.
func DropPrefixFromSet[S ~map[E]struct{}, E comparable](s S, prefix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpDropPrefix, prefixDropper(prefix, divider), false, opts))
}

// DropPrefixFromArray removes prefix + divider from every element of a that has it.
func DropPrefixFromArray[A any](a A, prefix, divider string, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpDropPrefix, prefixDropper(prefix, divider), false, opts))
}

// DropSuffixFromString removes divider + suffix from the end of s when present.
func DropSuffixFromString(s, suffix, divider string) string {
	return suffixDropper(suffix, divider)(s)
}

// DropSuffixFromMap removes divider + suffix from every key of m that has it.
func DropSuffixFromMap[M ~map[K]V, K comparable, V any](m M, suffix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropSuffix, suffixDropper(suffix, divider), false, opts))
}

// DropSuffixFromValues removes divider + suffix from every value of m that has it.
func DropSuffixFromValues[M ~map[K]V, K comparable, V any](m M, suffix, divider string, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpDropSuffix, suffixDropper(suffix, divider), true, opts))
}

// DropSuffixFromSlice removes divider + suffix from every element of s that has it.
func DropSuffixFromSlice[S ~[]E, E any](s S, suffix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpDropSuffix, suffixDropper(suffix, divider), false, opts))
}

// DropSuffixFromSet removes divider + suffix from every member of s that has it.
func DropSuffixFromSet[S ~map[E]struct{}, E comparable](s S, suffix, divider string, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpDropSuffix, suffixDropper(suffix, divider), false, opts))
}

// DropSuffixFromArray removes divider + suffix from every element of a that has it.
func DropSuffixFromArray[A any](a A, suffix, divider string, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpDropSuffix, suffixDropper(suffix, divider), false, opts))
}
