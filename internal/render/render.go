// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes search results to the terminal in one of several
// formats. The default, pretty, dumps the value's full structure the way a
// debugger would; json and yaml are for piping; table is for reading.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.yaml.in/yaml/v3"
)

// Format selects an output encoding.
type Format string

const (
	Pretty Format = "pretty"
	JSON   Format = "json"
	YAML   Format = "yaml"
	Table  Format = "table"
)

// Formats lists the supported formats, default first.
var Formats = []Format{Pretty, JSON, YAML, Table}

// ParseFormat validates s. An empty string selects Pretty.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Pretty, nil
	case Pretty, JSON, YAML, Table:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q: use pretty, json, yaml, or table", s)
}

// prettyConfig is deterministic across runs: no pointer addresses, no
// capacities, sorted map keys.
var prettyConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Render writes v to w in format f.
func Render(w io.Writer, f Format, v any) error {
	switch f {
	case Pretty, "":
		prettyConfig.Fdump(w, v)
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case Table:
		if writeTable(w, v) {
			return nil
		}
		prettyConfig.Fdump(w, v)
		return nil
	}
	return fmt.Errorf("unsupported format %q", f)
}
