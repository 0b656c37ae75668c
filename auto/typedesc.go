package auto

import (
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// structuralKind classifies a reflect.Type the way AUTO's algorithm
// dispatches on it (§4.6 "Structural case").
type structuralKind int

const (
	kindLeaf structuralKind = iota
	kindArray
	kindTuple
	kindOption
	kindListOrSet
	kindMap
	kindEnum
	kindRecord
	kindUnion
	kindAny
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	bigRatType   = reflect.TypeOf(&big.Rat{})
	bigIntType   = reflect.TypeOf(&big.Int{})
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
)

// classify determines t's structural kind for the AUTO dispatch algorithm.
func classify(t reflect.Type) structuralKind {
	if t == anyType {
		return kindAny
	}
	if isLeafType(t) {
		return kindLeaf
	}
	switch t.Kind() {
	case reflect.Interface:
		return kindUnion
	case reflect.Array:
		return kindArray
	case reflect.Slice:
		return kindListOrSet
	case reflect.Map:
		if isSetShaped(t) {
			return kindListOrSet
		}
		return kindMap
	case reflect.Struct:
		if isOptionShaped(t) {
			return kindOption
		}
		if isTupleShaped(t) {
			return kindTuple
		}
		return kindRecord
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Int64:
		if t.PkgPath() != "" {
			return kindEnum
		}
		return kindLeaf
	default:
		return kindLeaf
	}
}

func isLeafType(t reflect.Type) bool {
	switch t {
	case timeType, durationType, uuidType, bigRatType, bigIntType:
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool, reflect.Float32, reflect.Float64:
		return t.PkgPath() == "" || t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
	}
	return false
}

// isOptionShaped recognizes decode.Option[T]'s exact field layout
// (unexported `valid bool` + `value T`). AUTO cannot use decode.Some/None
// directly since it cannot instantiate a generic function at runtime; it
// instead drives Option[T] through its exported SetValue/Clear/Get methods
// via reflection, matched on this shape.
func isOptionShaped(t reflect.Type) bool {
	if t.NumField() != 2 {
		return false
	}
	f0, f1 := t.Field(0), t.Field(1)
	return f0.Name == "valid" && f0.Type.Kind() == reflect.Bool && f1.Name == "value"
}

func optionElemType(t reflect.Type) reflect.Type {
	f, _ := t.FieldByName("value")
	return f.Type
}

// isTupleShaped recognizes decode.PairN[...]'s field-naming convention:
// fields named "A", "B", "C", ... in order.
func isTupleShaped(t reflect.Type) bool {
	n := t.NumField()
	if n < 2 || n > 8 {
		return false
	}
	for i := 0; i < n; i++ {
		if t.Field(i).Name != string(rune('A'+i)) {
			return false
		}
	}
	return true
}

// isSetShaped recognizes map[T]struct{}, AUTO's representation of a set
// (there being no native Go set type).
func isSetShaped(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
