package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff diffs a and b line by line.
func lineDiff(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// writeDiff prints diffs with a "-", "+" or " " marker on every line and
// reports whether anything changed.
func writeDiff(w io.Writer, diffs []diffpatch.Diff, colored bool) (bool, error) {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, c := range []*color.Color{del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	changed := false
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			var err error
			switch d.Type {
			case diffpatch.DiffDelete:
				changed = true
				_, err = del.Fprint(w, "-"+line)
			case diffpatch.DiffInsert:
				changed = true
				_, err = ins.Fprint(w, "+"+line)
			default:
				_, err = fmt.Fprint(w, " "+line)
			}
			if err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

// mergePatch returns the RFC 7386 merge patch turning before into after.
// Unless both are mappings the patch is after itself.
func mergePatch(before, after any) ([]byte, error) {
	b, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	_, objBefore := before.(map[string]any)
	_, objAfter := after.(map[string]any)
	if !objBefore || !objAfter {
		return b, nil
	}
	a, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
