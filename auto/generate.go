package auto

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/elmcodec/json4/decode"
	"github.com/elmcodec/json4/encode"
	"github.com/elmcodec/json4/pkg/fieldtags"

	json4 "github.com/elmcodec/json4"
)

// genContext carries the state threaded through one top-level Encoder[T]/
// Decoder[T] call: the chosen case strategy, the caller's overrides, and
// the recursion placeholders installed for types currently being built
// (§4.6 step 3).
type genContext struct {
	strategy      CaseStrategy
	extras        *ExtraCoders
	skipNullField bool
	placeholders  map[reflect.Type]*lazyCell
}

type lazyCell struct {
	enc BoxedEncoder
	dec BoxedDecoder
}

func newGenContext(strategy CaseStrategy, extras *ExtraCoders, skipNullField bool) *genContext {
	return &genContext{
		strategy:      strategy,
		extras:        extras,
		skipNullField: skipNullField,
		placeholders:  make(map[reflect.Type]*lazyCell),
	}
}

// generate implements the six-step AUTO algorithm (§4.6) for type t.
func generate(t reflect.Type, ctx *genContext) CoderPair {
	name := typeName(t)

	// 1. Override.
	if pair, ok := ctx.extras.lookup(name); ok {
		return pair
	}

	// 2. Cached.
	key := cacheKey(ctx.strategy, name, ctx.extras.hash())
	if pair, ok := globalCache.peek(key); ok {
		return pair
	}

	// 3. Recursion placeholder.
	if cell, ok := ctx.placeholders[t]; ok {
		return CoderPair{
			Encode: func(v any) json4.Json { return cell.enc(v) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return cell.dec(path, v) },
		}
	}
	cell := &lazyCell{}
	ctx.placeholders[t] = cell

	// 4. Structural case.
	pair := buildStructural(t, ctx)

	// 6. Install: populate the placeholder cell, then commit to the cache.
	cell.enc = pair.Encode
	cell.dec = pair.Decode
	delete(ctx.placeholders, t)
	return globalCache.GetOrCreate(key, func() CoderPair { return pair })
}

func buildStructural(t reflect.Type, ctx *genContext) CoderPair {
	switch classify(t) {
	case kindAny:
		return CoderPair{
			Encode: func(v any) json4.Json { return v.(json4.Json) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return v, nil },
		}
	case kindLeaf:
		if pair, ok := leafCoder(t); ok {
			return pair
		}
		panic(fmt.Sprintf("json4/auto: unsupported leaf type %s; register it via ExtraCoders", name(t)))
	case kindEnum:
		return buildEnumCoder(t)
	case kindOption:
		return buildOptionCoder(t, ctx)
	case kindTuple:
		return buildTupleCoder(t, ctx)
	case kindArray:
		return buildArrayCoder(t, ctx)
	case kindListOrSet:
		if t.Kind() == reflect.Map {
			return buildSetCoder(t, ctx)
		}
		return buildListCoder(t, ctx)
	case kindMap:
		return buildMapCoder(t, ctx)
	case kindUnion:
		return buildUnionCoder(t, ctx)
	case kindRecord:
		return buildRecordCoder(t, ctx)
	default:
		panic(fmt.Sprintf("json4/auto: cannot generate a coder for %s; register it via ExtraCoders", name(t)))
	}
}

func name(t reflect.Type) string { return typeName(t) }

func atIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// === Leaf primitives (§4.6 step 4 "Leaf primitives") ===

func leafCoder(t reflect.Type) (CoderPair, bool) {
	switch t {
	case timeType:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.DatetimeOffset(v.(time.Time)) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.DatetimeOffset(path, v) },
		}, true
	case durationType:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Timespan(v.(time.Duration)) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Timespan(path, v) },
		}, true
	case uuidType:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Guid(v.(uuid.UUID)) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Guid(path, v) },
		}, true
	case bigRatType:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Decimal(v.(*big.Rat)) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Decimal(path, v) },
		}, true
	case bigIntType:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.BigInt(v.(*big.Int)) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.BigInt(path, v) },
		}, true
	}
	switch t.Kind() {
	case reflect.String:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.String(reflect.ValueOf(v).String()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.String(path, v) },
		}, true
	case reflect.Bool:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Bool(reflect.ValueOf(v).Bool()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Bool(path, v) },
		}, true
	case reflect.Float64:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Float(reflect.ValueOf(v).Float()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Float(path, v) },
		}, true
	case reflect.Float32:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Float32(float32(reflect.ValueOf(v).Float())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Float32(path, v) },
		}, true
	case reflect.Int8:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.SByte(int8(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.SByte(path, v) },
		}, true
	case reflect.Int16:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int16(int16(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Int16(path, v) },
		}, true
	case reflect.Int32, reflect.Int:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int(int32(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Int(path, v) },
		}, true
	case reflect.Int64:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int64(reflect.ValueOf(v).Int()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Int64(path, v) },
		}, true
	case reflect.Uint8:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Byte(uint8(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.Byte(path, v) },
		}, true
	case reflect.Uint16:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt16(uint16(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.UInt16(path, v) },
		}, true
	case reflect.Uint32:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt32(uint32(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.UInt32(path, v) },
		}, true
	case reflect.Uint64, reflect.Uint:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt64(reflect.ValueOf(v).Uint()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) { return decode.UInt64(path, v) },
		}, true
	}
	return CoderPair{}, false
}

// convertedValue converts a leaf decoder's fixed result type (e.g. int32
// from decode.Int) to the declared field/element type it is being written
// into (e.g. a plain int, or a named type like `type UserID string`),
// mirroring buildEnumCoder's reflect.Value.Convert(t) (enum.go).
func convertedValue(val any, target reflect.Type) reflect.Value {
	rv := reflect.ValueOf(val)
	if rv.Type() == target {
		return rv
	}
	return rv.Convert(target)
}

// === Option (§4.6 "Generic option") ===

func buildOptionCoder(t reflect.Type, ctx *genContext) CoderPair {
	elemType := optionElemType(t)
	inner := generate(elemType, ctx)

	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			getRes := rv.MethodByName("Get").Call(nil)
			if !getRes[1].Bool() {
				return json4.Null()
			}
			return inner.Encode(getRes[0].Interface())
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			out := reflect.New(t)
			if v.IsNull() {
				out.MethodByName("Clear").Call(nil)
				return out.Elem().Interface(), nil
			}
			val, err := inner.Decode(path, v)
			if err != nil {
				return nil, err
			}
			out.MethodByName("SetValue").Call([]reflect.Value{convertedValue(val, elemType)})
			return out.Elem().Interface(), nil
		},
	}
}

// === Tuples (§4.6 "Tuple") ===

func buildTupleCoder(t reflect.Type, ctx *genContext) CoderPair {
	n := t.NumField()
	elemCoders := make([]CoderPair, n)
	for i := 0; i < n; i++ {
		elemCoders[i] = generate(t.Field(i).Type, ctx)
	}
	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			items := make([]json4.Json, n)
			for i := 0; i < n; i++ {
				items[i] = elemCoders[i].Encode(rv.Field(i).Interface())
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			if v.Kind() != json4.KindArray || v.Len() != n {
				return nil, &json4.Error{Path: path, Reason: json4.TooSmallArray(
					fmt.Sprintf("an array of exactly %d elements", n), v)}
			}
			out := reflect.New(t).Elem()
			for i := 0; i < n; i++ {
				val, err := elemCoders[i].Decode(atIndex(path, i), v.At(i))
				if err != nil {
					return nil, err
				}
				out.Field(i).Set(convertedValue(val, out.Field(i).Type()))
			}
			return out.Interface(), nil
		},
	}
}

// === Arrays and lists (§4.6 "Array type" / "Generic list") ===

func buildArrayCoder(t reflect.Type, ctx *genContext) CoderPair {
	elemType := t.Elem()
	n := t.Len()
	elem := generate(elemType, ctx)
	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			items := make([]json4.Json, n)
			for i := 0; i < n; i++ {
				items[i] = elem.Encode(rv.Index(i).Interface())
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			if v.Kind() != json4.KindArray || v.Len() != n {
				return nil, &json4.Error{Path: path, Reason: json4.TooSmallArray(
					fmt.Sprintf("an array of exactly %d elements", n), v)}
			}
			out := reflect.New(t).Elem()
			for i := 0; i < n; i++ {
				val, err := elem.Decode(atIndex(path, i), v.At(i))
				if err != nil {
					return nil, err
				}
				out.Index(i).Set(convertedValue(val, elemType))
			}
			return out.Interface(), nil
		},
	}
}

func buildListCoder(t reflect.Type, ctx *genContext) CoderPair {
	elemType := t.Elem()
	elem := generate(elemType, ctx)
	sliceType := reflect.SliceOf(elemType)
	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			n := rv.Len()
			items := make([]json4.Json, n)
			for i := 0; i < n; i++ {
				items[i] = elem.Encode(rv.Index(i).Interface())
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			if v.Kind() != json4.KindArray {
				return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("an array", v)}
			}
			elems := v.Elements()
			out := reflect.MakeSlice(sliceType, len(elems), len(elems))
			for i, e := range elems {
				val, err := elem.Decode(atIndex(path, i), e)
				if err != nil {
					return nil, err
				}
				out.Index(i).Set(convertedValue(val, elemType))
			}
			return out.Interface(), nil
		},
	}
}

// buildSetCoder models a set as map[T]struct{} (§4.6 "Generic ... set"):
// encoded as a JSON array of its keys, decoded back into a map that
// dedupes by construction.
func buildSetCoder(t reflect.Type, ctx *genContext) CoderPair {
	elemType := t.Key()
	elem := generate(elemType, ctx)
	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			items := make([]json4.Json, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				items = append(items, elem.Encode(iter.Key().Interface()))
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			if v.Kind() != json4.KindArray {
				return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("an array", v)}
			}
			elems := v.Elements()
			out := reflect.MakeMapWithSize(t, len(elems))
			empty := reflect.New(t.Elem()).Elem()
			for i, e := range elems {
				val, err := elem.Decode(atIndex(path, i), e)
				if err != nil {
					return nil, err
				}
				out.SetMapIndex(convertedValue(val, elemType), empty)
			}
			return out.Interface(), nil
		},
	}
}

// === Maps (§4.6 "Generic map") ===

func isStringifiableKey(t reflect.Type) bool {
	return t.Kind() == reflect.String || t == uuidType
}

func stringifyKey(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return v.Interface().(uuid.UUID).String()
}

func parseKey(keyType reflect.Type, s string) (reflect.Value, error) {
	if keyType.Kind() == reflect.String {
		rv := reflect.New(keyType).Elem()
		rv.SetString(s)
		return rv, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(id), nil
}

func buildMapCoder(t reflect.Type, ctx *genContext) CoderPair {
	keyType, valType := t.Key(), t.Elem()
	valCoder := generate(valType, ctx)

	if isStringifiableKey(keyType) {
		return CoderPair{
			Encode: func(v any) json4.Json {
				rv := reflect.ValueOf(v)
				keys := rv.MapKeys()
				sort.Slice(keys, func(i, j int) bool {
					return stringifyKey(keys[i]) < stringifyKey(keys[j])
				})
				members := make([]json4.Member, len(keys))
				for i, k := range keys {
					members[i] = json4.Member{
						Key:   stringifyKey(k),
						Value: valCoder.Encode(rv.MapIndex(k).Interface()),
					}
				}
				return json4.Object(members...)
			},
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				out := reflect.MakeMap(t)
				switch v.Kind() {
				case json4.KindObject:
					for _, m := range v.Members() {
						key, kerr := parseKey(keyType, m.Key)
						if kerr != nil {
							return nil, &json4.Error{Path: path, Reason: json4.BadPrimitiveExtra("a map", v, kerr.Error())}
						}
						val, err := valCoder.Decode(path+"."+m.Key, m.Value)
						if err != nil {
							return nil, err
						}
						out.SetMapIndex(key, convertedValue(val, valType))
					}
					return out.Interface(), nil
				case json4.KindArray:
					return decodeMapFromPairs(path, v, keyType, valCoder, out)
				default:
					return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("an object or an array of pairs", v)}
				}
			},
		}
	}

	keyCoder := generate(keyType, ctx)
	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			items := make([]json4.Json, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				items = append(items, json4.Array(keyCoder.Encode(iter.Key().Interface()), valCoder.Encode(iter.Value().Interface())))
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			out := reflect.MakeMap(t)
			return decodeMapFromPairsGeneric(path, v, keyCoder, valCoder, out)
		},
	}
}

func decodeMapFromPairs(path string, v json4.Json, keyType reflect.Type, valCoder CoderPair, out reflect.Value) (any, *json4.Error) {
	valType := out.Type().Elem()
	for i, pair := range v.Elements() {
		if pair.Kind() != json4.KindArray || pair.Len() != 2 {
			return nil, &json4.Error{Path: atIndex(path, i), Reason: json4.TooSmallArray("a [key, value] pair", pair)}
		}
		keyStr, ok := pair.At(0).AsString()
		if !ok {
			return nil, &json4.Error{Path: atIndex(path, i), Reason: json4.BadPrimitive("a string key", pair.At(0))}
		}
		key, kerr := parseKey(keyType, keyStr)
		if kerr != nil {
			return nil, &json4.Error{Path: atIndex(path, i), Reason: json4.BadPrimitiveExtra("a map key", pair.At(0), kerr.Error())}
		}
		val, err := valCoder.Decode(atIndex(path, i), pair.At(1))
		if err != nil {
			return nil, err
		}
		out.SetMapIndex(key, convertedValue(val, valType))
	}
	return out.Interface(), nil
}

func decodeMapFromPairsGeneric(path string, v json4.Json, keyCoder, valCoder CoderPair, out reflect.Value) (any, *json4.Error) {
	if v.Kind() != json4.KindArray {
		return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("an array of pairs", v)}
	}
	keyType := out.Type().Key()
	valType := out.Type().Elem()
	for i, pair := range v.Elements() {
		if pair.Kind() != json4.KindArray || pair.Len() != 2 {
			return nil, &json4.Error{Path: atIndex(path, i), Reason: json4.TooSmallArray("a [key, value] pair", pair)}
		}
		key, err := keyCoder.Decode(atIndex(path, i), pair.At(0))
		if err != nil {
			return nil, err
		}
		val, err := valCoder.Decode(atIndex(path, i), pair.At(1))
		if err != nil {
			return nil, err
		}
		out.SetMapIndex(convertedValue(key, keyType), convertedValue(val, valType))
	}
	return out.Interface(), nil
}

// === Records (§4.6 "Record") ===

func buildRecordCoder(t reflect.Type, ctx *genContext) CoderPair {
	convert := fieldtags.Convert(ctx.strategy.Convert)
	fields := fieldtags.Fields(t, convert)
	type fieldPlan struct {
		fieldtags.Info
		coder    CoderPair
		isOption bool
	}
	plans := make([]fieldPlan, len(fields))
	for i, f := range fields {
		plans[i] = fieldPlan{Info: f, coder: generate(f.Type, ctx), isOption: classify(f.Type) == kindOption}
	}

	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			members := make([]json4.Member, 0, len(plans))
			for _, p := range plans {
				fv := rv.Field(p.Index)
				if p.isOption && ctx.skipNullField {
					isSome := fv.MethodByName("IsSome").Call(nil)[0].Bool()
					if !isSome {
						continue
					}
				}
				members = append(members, json4.Member{Key: p.JSONName, Value: p.coder.Encode(fv.Interface())})
			}
			return json4.Object(members...)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			if v.Kind() != json4.KindObject {
				return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("an object", v)}
			}
			out := reflect.New(t).Elem()
			for _, p := range plans {
				field, ok := v.Field(p.JSONName)
				if !ok {
					if p.isOption {
						continue
					}
					return nil, &json4.Error{Path: path, Reason: json4.BadField(p.JSONName, v)}
				}
				val, err := p.coder.Decode(path+"."+p.JSONName, field)
				if err != nil {
					return nil, err
				}
				out.Field(p.Index).Set(convertedValue(val, out.Field(p.Index).Type()))
			}
			return out.Interface(), nil
		},
	}
}

// === Discriminated unions (§4.6 "Discriminated union") ===

func buildUnionCoder(t reflect.Type, ctx *genContext) CoderPair {
	desc, ok := lookupUnion(t)
	if !ok {
		panic(fmt.Sprintf("json4/auto: %s is an interface type with no registered union cases; call auto.RegisterUnion first", name(t)))
	}

	type casePlan struct {
		UnionCase
		fields []fieldPlanLite
	}
	plans := make([]casePlan, len(desc.cases))
	byName := make(map[string]int, len(desc.cases))
	byType := make(map[reflect.Type]int, len(desc.cases))
	for i, c := range desc.cases {
		fs := fieldtags.Fields(c.CaseType, fieldtags.Convert(ctx.strategy.Convert))
		lite := make([]fieldPlanLite, len(fs))
		for j, f := range fs {
			lite[j] = fieldPlanLite{Info: f, coder: generate(f.Type, ctx)}
		}
		plans[i] = casePlan{UnionCase: c, fields: lite}
		byName[c.Name] = i
		byType[c.CaseType] = i
	}

	return CoderPair{
		Encode: func(v any) json4.Json {
			rv := reflect.ValueOf(v)
			idx, ok := byType[rv.Type()]
			if !ok {
				panic(fmt.Sprintf("json4/auto: value of type %s is not a registered case of %s", rv.Type(), name(t)))
			}
			p := plans[idx]
			if len(p.fields) == 0 {
				return json4.String(p.Name)
			}
			items := make([]json4.Json, 0, len(p.fields)+1)
			items = append(items, json4.String(p.Name))
			for _, f := range p.fields {
				items = append(items, f.coder.Encode(rv.Field(f.Index).Interface()))
			}
			return json4.ArrayFromSlice(items)
		},
		Decode: func(path string, v json4.Json) (any, *json4.Error) {
			var caseName string
			var tail []json4.Json
			switch v.Kind() {
			case json4.KindString:
				s, _ := v.AsString()
				caseName = s
			case json4.KindArray:
				if v.Len() == 0 || v.At(0).Kind() != json4.KindString {
					return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("a union tag array", v)}
				}
				s, _ := v.At(0).AsString()
				caseName = s
				tail = v.Elements()[1:]
			default:
				return nil, &json4.Error{Path: path, Reason: json4.BadPrimitive("a union case", v)}
			}
			idx, ok := byName[caseName]
			if !ok {
				return nil, &json4.Error{Path: path, Reason: json4.BadPrimitiveExtra("a known union case", v, "unknown case: "+caseName)}
			}
			p := plans[idx]
			if len(tail) != len(p.fields) && !(len(p.fields) == 0 && len(tail) <= 1) {
				return nil, &json4.Error{Path: path, Reason: json4.TooSmallArray(
					fmt.Sprintf("%d field(s) for case %s", len(p.fields), p.Name), v)}
			}
			out := reflect.New(p.CaseType).Elem()
			for i, f := range p.fields {
				val, err := f.coder.Decode(atIndex(path, i+1), tail[i])
				if err != nil {
					return nil, err
				}
				out.Field(f.Index).Set(convertedValue(val, out.Field(f.Index).Type()))
			}
			return out.Interface(), nil
		},
	}
}

type fieldPlanLite struct {
	fieldtags.Info
	coder CoderPair
}
