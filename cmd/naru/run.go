package main

import (
	"fmt"
	"io"

	"github.com/Gobd/naru"
	"github.com/Gobd/naru/convert"
	"github.com/scott-cotton/cli"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: run requires an operation", cli.ErrUsage)
	}
	if cfg.Diff && cfg.MergePatch {
		return fmt.Errorf("%w: -diff and -mergePatch are exclusive", cli.ErrUsage)
	}
	op, err := naru.ParseOperation(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	j := &job{op: op, args: args[1:], where: cfg.Where, opts: cfg.options()}

	d, err := readInput(cc, cfg.File)
	if err != nil {
		return err
	}
	in, err := decode(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", inputName(cfg.File), err)
	}
	// apply may rewrite in place; keep the input rendering for comparison.
	before, err := encode(in, cfg.format())
	if err != nil {
		return err
	}
	out, err := j.apply(in)
	if err != nil {
		return err
	}
	return cfg.write(cc.Out, before, out)
}

func (cfg *RunConfig) write(w io.Writer, before []byte, out any) error {
	f := cfg.format()
	switch {
	case cfg.Diff:
		after, err := encode(out, f)
		if err != nil {
			return err
		}
		_, err = writeDiff(w, lineDiff(string(before), string(after)), cfg.useColor(w))
		return err
	case cfg.MergePatch:
		in, err := decode(before)
		if err != nil {
			return err
		}
		patch, err := mergePatch(in, out)
		if err != nil {
			return err
		}
		d, err := jsonToFormat(patch, f)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	d, err := encode(out, f)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func inputName(file string) string {
	if file == "" || file == "-" {
		return "stdin"
	}
	return file
}

// job is one operation call with its command line parameters.
type job struct {
	op    naru.Operation
	args  []string
	where string
	opts  []naru.Option

	pred *where
}

func (j *job) apply(item any) (any, error) {
	params, err := j.params(item)
	if err != nil {
		return nil, err
	}
	for _, o := range j.opts {
		params = append(params, o)
	}
	out, err := naru.Dispatch(j.op, item, params...)
	if err == nil && j.pred != nil {
		err = j.pred.err
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// params converts the command line parameters to what op expects for item.
func (j *job) params(item any) ([]any, error) {
	c := naru.Classify(item)
	if j.where != "" {
		if j.op != naru.OpCleave || c != naru.CategoryMapping {
			return nil, fmt.Errorf("%w: -where applies to cleave on mappings only", cli.ErrUsage)
		}
		if len(j.args) > 0 {
			return nil, fmt.Errorf("%w: -where replaces the cleave divider", cli.ErrUsage)
		}
		pred, err := compileWhere(j.where)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		j.pred = pred
		return []any{pred.match}, nil
	}

	seq := c == naru.CategorySequence || c == naru.CategoryTuple
	params := make([]any, len(j.args))
	for i, a := range j.args {
		switch {
		case j.op == naru.OpCleave && seq:
			n, err := convert.Integerify(a)
			if err != nil {
				return nil, fmt.Errorf("%w: cleave index: %w", cli.ErrUsage, err)
			}
			params[i] = n
		case j.op == naru.OpSeparate && seq:
			params[i] = elementParam(item, a)
		default:
			params[i] = a
		}
	}
	return params, nil
}

// elementParam returns a as text when item holds it as text, and as the
// value it spells otherwise.
func elementParam(item any, a string) any {
	for _, e := range convert.Listify(item) {
		if s, ok := e.(string); ok && s == a {
			return a
		}
	}
	return convert.Typify(a)
}
