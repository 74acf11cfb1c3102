// SPDX-License-Identifier: MPL-2.0

package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"

	"tenper-cli/internal/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed project_schema.cue
var projectSchema string

// Parse decodes, normalizes and validates a project file. The name is used in
// error messages only.
func Parse(data []byte, format Format, name string) (*Project, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, name); err != nil {
		return nil, err
	}

	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: file is empty", name)
	}

	result, err := cueutil.DecodeValue[Project](projectSchema, normalize(raw), "#Project",
		cueutil.WithFilename(name))
	if err != nil {
		return nil, err
	}

	return result.Value, nil
}

func decodeRaw(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return raw, nil
}

// normalize rewrites the loosely typed shapes YAML users write into what the
// schema expects. Null values are dropped, scalars in string positions become
// strings and the virtualenv shorthand (true, false, null, {}) is resolved.
func normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		switch k {
		case "session name", "project root":
			out[k] = scalarString(v)
		case "virtualenv":
			if venv, ok := normalizeVirtualenv(v); ok {
				out[k] = venv
			}
		case "environment":
			out[k] = normalizeEnvironment(v)
		case "windows":
			out[k] = normalizeWindows(v)
		default:
			out[k] = v
		}
	}
	return out
}

func normalizeVirtualenv(v any) (any, bool) {
	switch venv := v.(type) {
	case bool:
		if !venv {
			return nil, false
		}
		return map[string]any{}, true
	default:
		m, ok := asMap(v)
		if !ok {
			return v, true
		}
		if len(m) == 0 {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, val := range m {
			if val == nil {
				continue
			}
			if k == "python binary" || k == "path" {
				val = scalarString(val)
			}
			out[k] = val
		}
		return out, true
	}
}

func normalizeEnvironment(v any) any {
	m, ok := asMap(v)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if val == nil {
			out[k] = ""
			continue
		}
		out[k] = scalarString(val)
	}
	return out
}

func normalizeWindows(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(list))
	for i, w := range list {
		m, ok := asMap(w)
		if !ok {
			out[i] = w
			continue
		}
		win := make(map[string]any, len(m))
		for k, val := range m {
			if val == nil {
				continue
			}
			switch k {
			case "name", "layout":
				win[k] = scalarString(val)
			case "panes":
				win[k] = normalizePanes(val)
			default:
				win[k] = val
			}
		}
		out[i] = win
	}
	return out
}

func normalizePanes(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(list))
	for i, p := range list {
		if p == nil {
			out[i] = ""
			continue
		}
		out[i] = scalarString(p)
	}
	return out
}

// asMap accepts both decoder map shapes; yaml.v3 falls back to
// map[any]any when a mapping has non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarString converts booleans and numbers to their literal text and leaves
// anything else untouched for the schema to reject.
func scalarString(v any) any {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return v
	}
}
