// Package convert coerces loosely typed values, such as those decoded from
// YAML or JSON documents and command-line arguments, into the shapes the
// naru operations expect.
package convert
