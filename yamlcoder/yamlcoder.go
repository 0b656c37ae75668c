// Package yamlcoder adapts the core Json value abstraction (JVA, §4.1) to
// YAML text, as an alternative to jva_stdjson.go's JSON-text adapter. It
// lets any decode.Decoder[T]/encode.Encoder[T] built against json4.Json
// read and write YAML without modifying decode/ or encode/, since both
// operate purely on the host-independent Json value rather than on text.
package yamlcoder

import (
	"fmt"

	"github.com/goccy/go-yaml"

	json4 "github.com/elmcodec/json4"
)

// ParseText parses YAML text into a Json value, preserving mapping-key
// order the way jva_stdjson.ParseText preserves JSON object-member order.
func ParseText(text string) (json4.Json, error) {
	var node yaml.MapSlice
	if err := yaml.UnmarshalWithOptions([]byte(text), &node, yaml.UseOrderedMap()); err == nil {
		return mapSliceToJson(node), nil
	}
	var generic any
	if err := yaml.UnmarshalWithOptions([]byte(text), &generic, yaml.UseOrderedMap()); err != nil {
		return json4.Json{}, fmt.Errorf("given an invalid YAML: %w", err)
	}
	return anyToJson(generic), nil
}

func mapSliceToJson(ms yaml.MapSlice) json4.Json {
	members := make([]json4.Member, len(ms))
	for i, item := range ms {
		members[i] = json4.Member{Key: fmt.Sprint(item.Key), Value: anyToJson(item.Value)}
	}
	return json4.Object(members...)
}

func anyToJson(v any) json4.Json {
	switch x := v.(type) {
	case nil:
		return json4.Null()
	case bool:
		return json4.Bool(x)
	case int:
		return json4.Number(float64(x))
	case int64:
		return json4.Number(float64(x))
	case uint64:
		return json4.Number(float64(x))
	case float64:
		return json4.Number(x)
	case string:
		return json4.String(x)
	case yaml.MapSlice:
		return mapSliceToJson(x)
	case map[string]any:
		members := make([]json4.Member, 0, len(x))
		for k, v := range x {
			members = append(members, json4.Member{Key: k, Value: anyToJson(v)})
		}
		return json4.Object(members...)
	case []any:
		items := make([]json4.Json, len(x))
		for i, elem := range x {
			items[i] = anyToJson(elem)
		}
		return json4.ArrayFromSlice(items)
	default:
		return json4.String(fmt.Sprint(x))
	}
}

// ToString renders a Json value as YAML text.
func ToString(v json4.Json) (string, error) {
	out, err := yaml.Marshal(jsonToYAMLValue(v))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func jsonToYAMLValue(v json4.Json) any {
	switch v.Kind() {
	case json4.KindNull, json4.KindUndefined:
		return nil
	case json4.KindBool:
		b, _ := v.AsBool()
		return b
	case json4.KindNumber:
		n, _ := v.AsFloat64()
		return n
	case json4.KindString:
		s, _ := v.AsString()
		return s
	case json4.KindArray:
		elems := v.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = jsonToYAMLValue(e)
		}
		return out
	case json4.KindObject:
		members := v.Members()
		ms := make(yaml.MapSlice, len(members))
		for i, m := range members {
			ms[i] = yaml.MapItem{Key: m.Key, Value: jsonToYAMLValue(m.Value)}
		}
		return ms
	default:
		return nil
	}
}
