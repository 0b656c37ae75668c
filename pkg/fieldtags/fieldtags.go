// Package fieldtags resolves the JSON key a struct field should encode and
// decode under, combining an explicit `json:"name"` tag (checked first,
// exactly as encoding/json would) with AUTO's CaseStrategy conversion for
// fields that carry no tag. Grounded on the teacher's struct_validation.go
// (parseJSONTag) and pkg/tagparser (a dedicated tag-reading package).
package fieldtags

import (
	"reflect"
	"strings"
)

// Info describes how one exported struct field maps onto JSON.
type Info struct {
	Index     int
	GoName    string
	JSONName  string
	Omitempty bool
	Skip      bool
	Type      reflect.Type
}

// Convert maps a Go field name to a JSON key according to a case strategy.
// It is supplied by the caller (auto.CaseStrategy.Convert) to avoid this
// package depending on the auto package.
type Convert func(goName string) string

// Fields returns field metadata for every exported, non-skipped field of
// structType, in declaration order, applying convert to fields with no
// explicit `json` tag.
func Fields(structType reflect.Type, convert Convert) []Info {
	var out []Info
	for i := 0; i < structType.NumField(); i++ {
		f := structType.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous {
			// Embedded fields are promoted by the reflect package itself
			// when iterating NumField of the outer struct only at depth
			// 0; nested promotion is intentionally not flattened here to
			// keep AUTO's field walk a direct mirror of declaration order.
		}

		tag, hasTag := f.Tag.Lookup("json")
		if tag == "-" && !strings.Contains(tag, ",") {
			continue
		}

		name, omitempty := parseJSONTag(tag, f.Name)
		if !hasTag {
			name = convert(f.Name)
		}

		out = append(out, Info{
			Index:     i,
			GoName:    f.Name,
			JSONName:  name,
			Omitempty: omitempty,
			Type:      f.Type,
		})
	}
	return out
}

// parseJSONTag parses a `json:"..."` tag value, mirroring
// struct_validation.go's parseJSONTag.
func parseJSONTag(tag, defaultName string) (string, bool) {
	if tag == "" {
		return defaultName, false
	}
	if commaIdx := strings.IndexByte(tag, ','); commaIdx >= 0 {
		name := tag[:commaIdx]
		if name == "" {
			name = defaultName
		}
		return name, strings.Contains(tag[commaIdx:], "omitempty")
	}
	return tag, false
}
