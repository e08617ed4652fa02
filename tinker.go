package naru

import "slices"

func noParams(op Operation, fn func(string) string) binder {
	return func(params []any) (func(string) string, error) {
		if err := checkArity(op, params, 0, 0); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

// CapitalifyString converts s to capital case: "http_server" becomes "HttpServer".
func CapitalifyString(s string) string {
	return capitalifyString(s)
}

// CapitalifyMap converts every key of m to capital case.
func CapitalifyMap[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpCapitalify, capitalifyString, false, opts))
}

// CapitalifyValues converts every value of m to capital case.
func CapitalifyValues[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpCapitalify, capitalifyString, true, opts))
}

// CapitalifySlice converts every element of s to capital case.
func CapitalifySlice[S ~[]E, E any](s S, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpCapitalify, capitalifyString, false, opts))
}

// CapitalifySet converts every member of s to capital case.
func CapitalifySet[S ~map[E]struct{}, E comparable](s S, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpCapitalify, capitalifyString, false, opts))
}

// CapitalifyArray converts every element of a to capital case.
func CapitalifyArray[A any](a A, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpCapitalify, capitalifyString, false, opts))
}

// SnakifyString converts s to snake case: "HTTPServerError" becomes
// "http_server_error". Leading and trailing underscores are kept.
func SnakifyString(s string) string {
	return snakifyString(s)
}

// SnakifyMap converts every key of m to snake case.
func SnakifyMap[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpSnakify, snakifyString, false, opts))
}

// SnakifyValues converts every value of m to snake case.
func SnakifyValues[M ~map[K]V, K comparable, V any](m M, opts ...Option) (M, error) {
	return modify(m, (*textOp).mapping, newTextOp(OpSnakify, snakifyString, true, opts))
}

// SnakifySlice converts every element of s to snake case.
func SnakifySlice[S ~[]E, E any](s S, opts ...Option) (S, error) {
	return modify(s, (*textOp).sequence, newTextOp(OpSnakify, snakifyString, false, opts))
}

// SnakifySet converts every member of s to snake case.
func SnakifySet[S ~map[E]struct{}, E comparable](s S, opts ...Option) (S, error) {
	return modify(s, (*textOp).set, newTextOp(OpSnakify, snakifyString, false, opts))
}

// SnakifyArray converts every element of a to snake case.
func SnakifyArray[A any](a A, opts ...Option) (A, error) {
	return modify(a, (*textOp).tuple, newTextOp(OpSnakify, snakifyString, false, opts))
}

// Windowify returns the windows of length elements of item, advancing step
// elements between windows. A short final window is padded with fill, and a
// zero length yields a single empty window.
//
//	Windowify([]int{1, 2, 3, 4}, 3, 0, 2) // [[1 2 3] [3 4 0]]
func Windowify[T any](item []T, length int, fill T, step int) ([][]T, error) {
	p := windowParams{Length: length, Step: step}
	if err := validateParams(&p); err != nil {
		return nil, err
	}
	if length == 0 {
		return [][]T{{}}, nil
	}

	var out [][]T
	window := make([]T, 0, length)
	left := length
	for _, v := range item {
		if len(window) == length {
			window = window[1:]
		}
		window = append(window, v)
		left--
		if left == 0 {
			left = step
			out = append(out, slices.Clone(window))
		}
	}

	switch {
	case len(window) < length:
		w := slices.Clone(window)
		for len(w) < length {
			w = append(w, fill)
		}
		out = append(out, w)
	case left > 0 && left < min(step, length):
		w := slices.Clone(window)
		for range left {
			w = append(w[1:], fill)
		}
		out = append(out, w)
	}
	return out, nil
}
