package naru

import (
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const defaultDivider = "_"

// splitOptions removes Option values from params, keeping the order of the rest.
func splitOptions(params []any) ([]any, []Option) {
	var rest []any
	var opts []Option
	for _, p := range params {
		switch o := p.(type) {
		case Option:
			opts = append(opts, o)
		case func(*Config):
			opts = append(opts, o)
		default:
			rest = append(rest, p)
		}
	}
	return rest, opts
}

func checkArity(op Operation, params []any, lo, hi int) error {
	if len(params) >= lo && len(params) <= hi {
		return nil
	}
	want := fmt.Sprintf("%d", lo)
	if hi != lo {
		want = fmt.Sprintf("%d to %d", lo, hi)
	}
	return invalidArgument(fmt.Errorf("%s takes %s parameters, got %d", op, want, len(params)))
}

// textParam stores params[i] in dst when it is text. A missing parameter
// leaves dst unchanged.
func textParam(errs ValidationErrors, params []any, i int, name string, dst *string) {
	if i >= len(params) {
		return
	}
	if s, ok := asText(params[i]); ok {
		*dst = s
		return
	}
	errs[name] = fmt.Errorf("must be text, got %T", params[i])
}

func asText(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
	return 0, false
}

type affixParams struct {
	Affix   string `json:"affix"`
	Divider string `json:"divider"`
}

func bindAffix(op Operation, params []any) (affixParams, error) {
	var p affixParams
	if err := checkArity(op, params, 1, 2); err != nil {
		return p, err
	}
	errs := ValidationErrors{}
	textParam(errs, params, 0, "affix", &p.Affix)
	textParam(errs, params, 1, "divider", &p.Divider)
	if len(errs) > 0 {
		return p, invalidArgument(errs)
	}
	return p, nil
}

func bindSubstring(op Operation, params []any) (string, error) {
	if err := checkArity(op, params, 1, 1); err != nil {
		return "", err
	}
	var sub string
	errs := ValidationErrors{}
	textParam(errs, params, 0, "substring", &sub)
	if len(errs) > 0 {
		return "", invalidArgument(errs)
	}
	return sub, nil
}

type windowParams struct {
	Length int `json:"length"`
	Step   int `json:"step"`
}

// Validate checks the window shape. Min skips zero values, so a zero length
// passes and a zero step is caught by Required.
func (p *windowParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Length, validation.Min(0)),
		validation.Field(&p.Step, validation.Required, validation.Min(1)),
	)
}

type indexParams struct {
	Index int `json:"index"`
	Len   int `json:"-"`
}

func (p *indexParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Index, validation.Min(0), validation.Max(p.Len)),
	)
}

type dividerParams struct {
	Divider any `json:"divider"`
}

func (p *dividerParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Divider, validation.NotNil),
	)
}

// validateParams runs v.Validate and wraps the result in ErrInvalidArgument.
func validateParams(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return invalidArgument(verrs)
	}
	return invalidArgument(err)
}

// textDivider resolves a cleave or separate divider for text items.
func textDivider(divider any) (string, error) {
	if divider == nil {
		return defaultDivider, nil
	}
	s, ok := asText(divider)
	if !ok {
		return "", invalidArgument(ValidationErrors{"divider": fmt.Errorf("must be text, got %T", divider)})
	}
	if s == "" {
		return defaultDivider, nil
	}
	return s, nil
}
