package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps language code to flat message keys and their templates.
type Catalog map[string]map[string]string

// Merge copies every message from other into the catalog, overwriting
// duplicate keys.
func (c Catalog) Merge(other Catalog) {
	for lang, messages := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]string, len(messages))
		}
		for key, tmpl := range messages {
			c[lang][key] = tmpl
		}
	}
}

// Parser turns raw catalog file content into a Catalog. The top level of a
// catalog file maps language codes to (possibly nested) message maps; nested
// maps are flattened into dot-separated keys.
type Parser interface {
	Parse(data []byte) (Catalog, error)
	Extensions() []string
}

// YAMLParser parses YAML catalog files.
type YAMLParser struct{}

func (YAMLParser) Parse(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return catalogFromRaw(raw)
}

func (YAMLParser) Extensions() []string {
	return []string{"yaml", "yml"}
}

// JSONParser parses JSON catalog files.
type JSONParser struct{}

func (JSONParser) Parse(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return catalogFromRaw(raw)
}

func (JSONParser) Extensions() []string {
	return []string{"json"}
}

func catalogFromRaw(raw map[string]any) (Catalog, error) {
	catalog := make(Catalog, len(raw))
	for lang, val := range raw {
		nested, ok := toStringMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q maps to %T, expected a message map", ErrParse, lang, val)
		}
		messages := make(map[string]string)
		flatten("", nested, messages)
		catalog[lang] = messages
	}
	return catalog, nil
}

// flatten walks a nested message map and emits dot-separated keys:
// {"validation": {"max_value": "..."}} becomes "validation.max_value".
func flatten(prefix string, src map[string]any, dst map[string]string) {
	for key, val := range src {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			dst[full] = v
		default:
			if nested, ok := toStringMap(val); ok {
				flatten(full, nested, dst)
			} else {
				dst[full] = fmt.Sprint(v)
			}
		}
	}
}

// toStringMap normalizes the map types the YAML decoder may produce.
func toStringMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			converted[key] = v
		}
		return converted, true
	default:
		return nil, false
	}
}

// extensionSupported reports whether the parser handles files with the given
// extension (with or without the leading dot).
func extensionSupported(p Parser, ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, supported := range p.Extensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
