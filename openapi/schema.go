package openapi

import (
	"fmt"

	"github.com/Gobd/naru"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// param is a positional parameter of an operation, in call order.
type param struct {
	name     string
	required bool
	schema   func() *openapi3.Schema
}

func textParam(name, desc string, def any) param {
	return param{
		name:     name,
		required: def == nil,
		schema: func() *openapi3.Schema {
			s := openapi3.NewStringSchema()
			s.Description = desc
			if def != nil {
				s.WithDefault(def)
			}
			return s
		},
	}
}

var affixParams = []param{
	textParam("affix", "Text to add or drop.", nil),
	textParam("divider", "Text placed between the affix and the item.", ""),
}

var operationParams = map[naru.Operation][]param{
	naru.OpAddPrefix:     affixParams,
	naru.OpAddSuffix:     affixParams,
	naru.OpDropPrefix:    affixParams,
	naru.OpDropSuffix:    affixParams,
	naru.OpDropSubstring: {textParam("substring", "Text removed wherever it occurs.", nil)},
	naru.OpCleave: {{
		name: "divider",
		schema: func() *openapi3.Schema {
			s := openapi3.NewOneOfSchema(
				openapi3.NewStringSchema().WithDefault("_"),
				openapi3.NewIntegerSchema().WithMin(0),
			)
			s.Description = "Text divider for text items, split index for sequences and tuples, key prefix selecting the first part of a mapping."
			return s
		},
	}},
	naru.OpSeparate: {{
		name: "divider",
		schema: func() *openapi3.Schema {
			s := openapi3.NewSchema()
			s.Description = "Text divider for text items (default \"_\"), element value for sequences and tuples."
			return s
		},
	}},
}

// operationOptions lists the Config fields each operation reads, by json name.
var operationOptions = map[naru.Operation][]string{
	naru.OpAddPrefix:     {"recursive", "raise_error"},
	naru.OpAddSuffix:     {"recursive", "raise_error"},
	naru.OpDropPrefix:    {"recursive", "raise_error"},
	naru.OpDropSuffix:    {"recursive", "raise_error"},
	naru.OpDropSubstring: {"recursive", "raise_error"},
	naru.OpCapitalify:    {"recursive", "raise_error"},
	naru.OpSnakify:       {"recursive", "raise_error"},
	naru.OpDropDunders:   {"recursive", "raise_error"},
	naru.OpDropPrivates:  {"recursive", "raise_error"},
	naru.OpCleave:        {"raise_error", "return_last", "allow_empty"},
	naru.OpSeparate:      {"raise_error"},
}

var descriptions = map[naru.Operation]string{
	naru.OpAddPrefix:      "Prepend affix and divider to the item or its elements.",
	naru.OpAddSuffix:      "Append divider and affix to the item or its elements.",
	naru.OpDropPrefix:     "Remove a leading affix and divider where present.",
	naru.OpDropSuffix:     "Remove a trailing divider and affix where present.",
	naru.OpDropSubstring:  "Remove every occurrence of substring.",
	naru.OpCapitalify:     "Convert text to capital case.",
	naru.OpSnakify:        "Convert text to snake case.",
	naru.OpDropDunders:    "Remove entries whose names start with a double underscore.",
	naru.OpDropPrivates:   "Remove entries whose names start with an underscore.",
	naru.OpDropDuplicates: "Remove repeated elements, keeping first occurrences in order.",
	naru.OpCleave:         "Split the item into two parts.",
	naru.OpSeparate:       "Split the item into parts around every divider.",
}

// ItemSchema describes an item of category c.
func ItemSchema(c naru.Category) *openapi3.Schema {
	var s *openapi3.Schema
	switch c {
	case naru.CategoryMapping, naru.CategoryObject:
		s = openapi3.NewObjectSchema()
	case naru.CategorySequence, naru.CategoryTuple:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	case naru.CategorySet:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
		s.UniqueItems = true
	case naru.CategoryText:
		s = openapi3.NewStringSchema()
	default:
		s = openapi3.NewSchema()
	}
	s.Title = c.String()
	return s
}

func itemSchema(op naru.Operation) *openapi3.Schema {
	cats := naru.Categories(op)
	if len(cats) == 1 {
		return ItemSchema(cats[0])
	}
	schemas := make([]*openapi3.Schema, 0, len(cats))
	for _, c := range cats {
		schemas = append(schemas, ItemSchema(c))
	}
	return openapi3.NewOneOfSchema(schemas...)
}

// optionSchemas generates the schema of every Config field, with defaults
// taken from the current package defaults.
func optionSchemas() (openapi3.Schemas, error) {
	ref, err := NewSchemaRefForValue(naru.Config{})
	if err != nil {
		return nil, err
	}

	d := naru.Defaults()
	defaults := map[string]bool{
		"recursive":   d.Recursive,
		"raise_error": d.RaiseError,
		"return_last": d.ReturnLast,
		"allow_empty": d.AllowEmpty,
	}

	out := openapi3.Schemas{}
	for name, prop := range ref.Value.Properties {
		if prop.Value == nil {
			continue
		}
		s := *prop.Value
		s.Default = defaults[name]
		out[name] = &openapi3.SchemaRef{Value: &s}
	}
	return out, nil
}

// OperationSchema describes the request accepted by op: the item, each
// positional parameter by name and the options op reads.
func OperationSchema(op naru.Operation) (*openapi3.Schema, error) {
	if len(naru.Categories(op)) == 0 {
		return nil, &naru.UnsupportedOperationError{Name: op.String()}
	}
	opts, err := optionSchemas()
	if err != nil {
		return nil, err
	}
	return operationSchema(op, opts)
}

func operationSchema(op naru.Operation, opts openapi3.Schemas) (*openapi3.Schema, error) {
	s := openapi3.NewObjectSchema().WithProperty("item", itemSchema(op))
	s.Title = op.String()
	s.Description = descriptions[op]
	s.Required = []string{"item"}

	for _, p := range operationParams[op] {
		s.WithProperty(p.name, p.schema())
		if p.required {
			s.Required = append(s.Required, p.name)
		}
	}
	for _, name := range operationOptions[op] {
		ref, ok := opts[name]
		if !ok {
			return nil, fmt.Errorf("no option %q for %s", name, op)
		}
		s.WithPropertyRef(name, ref)
	}
	return s, nil
}

// Catalog returns the schema of every operation keyed by operation name.
func Catalog() (map[string]*openapi3.Schema, error) {
	opts, err := optionSchemas()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*openapi3.Schema, len(naru.Operations()))
	for _, op := range naru.Operations() {
		s, err := operationSchema(op, opts)
		if err != nil {
			return nil, err
		}
		out[op.String()] = s
	}
	return out, nil
}

// ResultSchema describes what op returns.
func ResultSchema(op naru.Operation) *openapi3.Schema {
	switch op {
	case naru.OpCleave:
		s := openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
		s.WithMinItems(2).WithMaxItems(2)
		s.Description = "The two parts."
		return s
	case naru.OpSeparate:
		s := openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
		s.Description = "The parts, in order."
		return s
	}
	s := itemSchema(op)
	s.Description = "The transformed item, in the category it was given."
	return s
}

// NewSchemaRefForValue generates an OpenAPI schema for the given Go value.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator()
	return g.NewSchemaRefForValue(value, nil)
}
