package naru

import (
	"fmt"
	"reflect"
)

// binder turns positional parameters into the text function of an
// element-wise operation.
type binder func(params []any) (func(string) string, error)

// handler implements one operation for one category. rv is the item as
// passed to Dispatch.
type handler func(rv reflect.Value, params []any, cfg Config) (reflect.Value, error)

var registry = map[Operation]map[Category]handler{
	OpAddPrefix:      textHandlers(OpAddPrefix, affixBinder(OpAddPrefix, prefixer)),
	OpAddSuffix:      textHandlers(OpAddSuffix, affixBinder(OpAddSuffix, suffixer)),
	OpDropPrefix:     textHandlers(OpDropPrefix, affixBinder(OpDropPrefix, prefixDropper)),
	OpDropSuffix:     textHandlers(OpDropSuffix, affixBinder(OpDropSuffix, suffixDropper)),
	OpDropSubstring:  textHandlers(OpDropSubstring, bindDropSubstring),
	OpCapitalify:     textHandlers(OpCapitalify, noParams(OpCapitalify, capitalifyString)),
	OpSnakify:        textHandlers(OpSnakify, noParams(OpSnakify, snakifyString)),
	OpDropDunders:    filterHandlers(OpDropDunders),
	OpDropPrivates:   filterHandlers(OpDropPrivates),
	OpDropDuplicates: {CategoryText: dedupeText, CategorySequence: dedupeSequence},
	OpCleave: {
		CategoryText:     cleaveTextHandler,
		CategoryMapping:  cleaveMapHandler,
		CategorySequence: cleaveSeqHandler,
		CategoryTuple:    cleaveSeqHandler,
	},
	OpSeparate: {
		CategoryText:     separateTextHandler,
		CategorySequence: separateSeqHandler,
		CategoryTuple:    separateSeqHandler,
	},
}

func textHandlers(op Operation, bind binder) map[Category]handler {
	walk := func(target func(*textOp, reflect.Value) (reflect.Value, error)) handler {
		return func(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
			fn, err := bind(params)
			if err != nil {
				return reflect.Value{}, err
			}
			return target(&textOp{op: op, fn: fn, cfg: cfg}, rv)
		}
	}
	return map[Category]handler{
		CategoryText:     walk((*textOp).text),
		CategoryMapping:  walk((*textOp).mapping),
		CategorySequence: walk((*textOp).sequence),
		CategorySet:      walk((*textOp).set),
		CategoryTuple:    walk((*textOp).tuple),
	}
}

func filterHandlers(op Operation) map[Category]handler {
	walk := func(target func(*nameFilter, reflect.Value) (reflect.Value, error)) handler {
		return func(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
			if err := checkArity(op, params, 0, 0); err != nil {
				return reflect.Value{}, err
			}
			return target(nameFilterFor(op, cfg), rv)
		}
	}
	return map[Category]handler{
		CategoryMapping:  walk((*nameFilter).mapping),
		CategorySequence: walk((*nameFilter).sequence),
		CategorySet:      walk((*nameFilter).set),
		CategoryObject:   walk((*nameFilter).object),
	}
}

func dedupeText(rv reflect.Value, params []any, _ Config) (reflect.Value, error) {
	if err := checkArity(OpDropDuplicates, params, 0, 0); err != nil {
		return reflect.Value{}, err
	}
	rv = indirect(rv)
	return reflect.ValueOf(dedupeString(rv.String())).Convert(rv.Type()), nil
}

func dedupeSequence(rv reflect.Value, params []any, _ Config) (reflect.Value, error) {
	if err := checkArity(OpDropDuplicates, params, 0, 0); err != nil {
		return reflect.Value{}, err
	}
	return dedupe(indirect(rv)), nil
}

func dividerParam(op Operation, params []any) (any, error) {
	if err := checkArity(op, params, 0, 1); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, nil
	}
	return params[0], nil
}

func cleaveTextHandler(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
	d, err := dividerParam(OpCleave, params)
	if err != nil {
		return reflect.Value{}, err
	}
	div, err := textDivider(d)
	if err != nil {
		return reflect.Value{}, err
	}
	rv = indirect(rv)
	a, b, err := cleaveText(rv.String(), div, cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf([2]any{
		reflect.ValueOf(a).Convert(rv.Type()).Interface(),
		reflect.ValueOf(b).Convert(rv.Type()).Interface(),
	}), nil
}

func cleaveSeqHandler(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
	d, err := dividerParam(OpCleave, params)
	if err != nil {
		return reflect.Value{}, err
	}
	index, ok := asInt(d)
	if !ok {
		return reflect.Value{}, invalidArgument(ValidationErrors{"divider": fmt.Errorf("must be an index, got %T", d)})
	}
	a, b, err := cleaveSeq(indirect(rv), index, cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf([2]any{a.Interface(), b.Interface()}), nil
}

func cleaveMapHandler(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
	d, err := dividerParam(OpCleave, params)
	if err != nil {
		return reflect.Value{}, err
	}
	pred, ok := d.(func(string) bool)
	if !ok {
		return reflect.Value{}, invalidArgument(ValidationErrors{"divider": fmt.Errorf("must be a func(string) bool, got %T", d)})
	}
	rv = indirect(rv)
	if rv.IsNil() {
		return reflect.Value{}, splitFailed("nil map")
	}
	a, b, err := cleaveMap(OpCleave, rv, pred, cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf([2]any{a.Interface(), b.Interface()}), nil
}

func separateTextHandler(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
	d, err := dividerParam(OpSeparate, params)
	if err != nil {
		return reflect.Value{}, err
	}
	div, err := textDivider(d)
	if err != nil {
		return reflect.Value{}, err
	}
	rv = indirect(rv)
	parts, err := separateText(rv.String(), div, cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = reflect.ValueOf(p).Convert(rv.Type()).Interface()
	}
	return reflect.ValueOf(out), nil
}

func separateSeqHandler(rv reflect.Value, params []any, cfg Config) (reflect.Value, error) {
	d, err := dividerParam(OpSeparate, params)
	if err != nil {
		return reflect.Value{}, err
	}
	parts, err := separateBy(indirect(rv), d, cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p.Interface()
	}
	return reflect.ValueOf(out), nil
}

// Dispatch applies op to item, choosing the implementation from the category
// of item. params are the positional parameters of op; Option values may be
// mixed in anywhere.
//
//	add_prefix, add_suffix, drop_prefix, drop_suffix  (affix string[, divider string])
//	drop_substring                                    (substring string)
//	capitalify, snakify                               ()
//	drop_dunders, drop_privates, drop_duplicates      ()
//	cleave                                            (divider any) -> [2]any
//	separate                                          (divider any) -> []any
//
// Modifiers return a value of the same type as item. Cleave takes a string
// for text, an int index for sequences and tuples, and a func(string) bool
// over keys for mappings. Separate takes a string for text, and for
// sequences and tuples either an element value or a func(any) any whose
// comparable results group the elements.
func Dispatch(op Operation, item any, params ...any) (any, error) {
	handlers, ok := registry[op]
	if !ok {
		return nil, &UnsupportedOperationError{Name: string(op)}
	}
	params, opts := splitOptions(params)
	rv := reflect.ValueOf(item)
	h, ok := handlers[classify(rv)]
	if !ok {
		return nil, unsupported(op, rv)
	}
	res, err := h(rv, params, newConfig(opts))
	if err != nil {
		return nil, err
	}
	if op.Converter() {
		return res.Interface(), nil
	}
	return rebuild(rv, res).Interface(), nil
}

// DispatchName is Dispatch with the operation given by name.
func DispatchName(name string, item any, params ...any) (any, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return nil, err
	}
	return Dispatch(op, item, params...)
}

func dispatchAs[T any](op Operation, item T, opts []Option, params ...any) (T, error) {
	for _, o := range opts {
		params = append(params, o)
	}
	res, err := Dispatch(op, item, params...)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// AddPrefix adds prefix and divider to the front of item, its keys or its elements.
func AddPrefix[T any](item T, prefix, divider string, opts ...Option) (T, error) {
	return dispatchAs(OpAddPrefix, item, opts, prefix, divider)
}

// AddSuffix adds divider and suffix to the end of item, its keys or its elements.
func AddSuffix[T any](item T, suffix, divider string, opts ...Option) (T, error) {
	return dispatchAs(OpAddSuffix, item, opts, suffix, divider)
}

// DropPrefix removes prefix and divider from the front of item, its keys or
// its elements where present.
func DropPrefix[T any](item T, prefix, divider string, opts ...Option) (T, error) {
	return dispatchAs(OpDropPrefix, item, opts, prefix, divider)
}

// DropSuffix removes divider and suffix from the end of item, its keys or
// its elements where present.
func DropSuffix[T any](item T, suffix, divider string, opts ...Option) (T, error) {
	return dispatchAs(OpDropSuffix, item, opts, suffix, divider)
}

// DropSubstring removes every occurrence of sub from item, its keys or its elements.
func DropSubstring[T any](item T, sub string, opts ...Option) (T, error) {
	return dispatchAs(OpDropSubstring, item, opts, sub)
}

// Capitalify converts item, its keys or its elements to capital case.
func Capitalify[T any](item T, opts ...Option) (T, error) {
	return dispatchAs(OpCapitalify, item, opts)
}

// Snakify converts item, its keys or its elements to snake case.
func Snakify[T any](item T, opts ...Option) (T, error) {
	return dispatchAs(OpSnakify, item, opts)
}

// DropDunders removes keys, members, elements or fields named "__*".
func DropDunders[T any](item T, opts ...Option) (T, error) {
	return dispatchAs(OpDropDunders, item, opts)
}

// DropPrivates removes keys, members, elements or fields named "_*".
func DropPrivates[T any](item T, opts ...Option) (T, error) {
	return dispatchAs(OpDropPrivates, item, opts)
}

// DropDuplicates removes repeated runes of text or repeated elements of a
// sequence, keeping the first.
func DropDuplicates[T any](item T, opts ...Option) (T, error) {
	return dispatchAs(OpDropDuplicates, item, opts)
}

// Cleave splits item in two. See Dispatch for the divider each category takes.
func Cleave(item, divider any, opts ...Option) (any, any, error) {
	params := []any{divider}
	for _, o := range opts {
		params = append(params, o)
	}
	res, err := Dispatch(OpCleave, item, params...)
	if err != nil {
		return nil, nil, err
	}
	pair := res.([2]any)
	return pair[0], pair[1], nil
}

// Separate splits item into parts. See Dispatch for the divider each
// category takes.
func Separate(item, divider any, opts ...Option) ([]any, error) {
	params := []any{divider}
	for _, o := range opts {
		params = append(params, o)
	}
	res, err := Dispatch(OpSeparate, item, params...)
	if err != nil {
		return nil, err
	}
	return res.([]any), nil
}
