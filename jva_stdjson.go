package json4

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// ParseText parses text into a Json value, per the JVA contract (§6): it
// must throw (return an error) with a message on malformed input. Object
// member order is preserved because jsontext streams tokens in document
// order rather than collapsing objects into an unordered map.
func ParseText(text string) (Json, error) {
	dec := jsontext.NewDecoder(strings.NewReader(text))
	v, err := decodeTextValue(dec)
	if err != nil {
		return Json{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return v, nil
}

func decodeTextValue(dec *jsontext.Decoder) (Json, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return Json{}, err
	}
	return decodeTextToken(dec, tok)
}

func decodeTextToken(dec *jsontext.Decoder, tok jsontext.Token) (Json, error) {
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 'f', 't':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case '[':
		var elems []Json
		for {
			peek := dec.PeekKind()
			if peek == ']' {
				if _, err := dec.ReadToken(); err != nil {
					return Json{}, err
				}
				return ArrayFromSlice(elems), nil
			}
			elem, err := decodeTextValue(dec)
			if err != nil {
				return Json{}, err
			}
			elems = append(elems, elem)
		}
	case '{':
		var members []Member
		for {
			peek := dec.PeekKind()
			if peek == '}' {
				if _, err := dec.ReadToken(); err != nil {
					return Json{}, err
				}
				return Object(members...), nil
			}
			keyTok, err := dec.ReadToken()
			if err != nil {
				return Json{}, err
			}
			val, err := decodeTextValue(dec)
			if err != nil {
				return Json{}, err
			}
			members = append(members, Member{Key: keyTok.String(), Value: val})
		}
	default:
		return Json{}, fmt.Errorf("unexpected token kind %q", tok.Kind())
	}
}

// ToString serializes a Json value to text, per encode.toString (§4.4).
// space <= 0 produces compact output; a positive value indents nested
// structures by that many spaces. Newlines are always "\n" so golden
// output stays stable across platforms.
func ToString(space int, v Json) string {
	var buf bytes.Buffer
	opts := []jsontext.Options{}
	if space > 0 {
		opts = append(opts, jsontext.Multiline(true), jsontext.WithIndent(strings.Repeat(" ", space)))
	}
	enc := jsontext.NewEncoder(&buf, opts...)
	if err := encodeTextValue(enc, v); err != nil {
		// encode.toString is total over Json values produced by this
		// package's own encoders; a failure here indicates a malformed
		// Json value, which is a programmer error.
		panic(fmt.Sprintf("json4: failed to render json: %v", err))
	}
	return buf.String()
}

func encodeTextValue(enc *jsontext.Encoder, v Json) error {
	switch v.kind {
	case KindNull, KindUndefined:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNumber:
		return enc.WriteToken(jsontext.Float(v.n))
	case KindString:
		return enc.WriteToken(jsontext.String(v.s))
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, elem := range v.arr {
			if err := encodeTextValue(enc, elem); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range v.fields {
			if err := enc.WriteToken(jsontext.String(m.Key)); err != nil {
				return err
			}
			if err := encodeTextValue(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("unknown json kind %v", v.kind)
	}
}
