package auto

import (
	"reflect"
	"sync"
)

// UnionCase describes one case of a discriminated union (§4.6 "Discriminated
// union"). CaseType must be a struct (possibly zero-field) whose value
// implements the union's interface type. Go has no native sum types, so
// AUTO cannot discover a union's cases purely by reflecting on an interface
// — callers register them explicitly with RegisterUnion.
type UnionCase struct {
	Name     string
	CaseType reflect.Type
}

type unionDescriptor struct {
	cases []UnionCase
}

var (
	unionRegistryMu sync.RWMutex
	unionRegistry   = map[reflect.Type]unionDescriptor{}
)

// RegisterUnion records the cases implementing the interface type iface, so
// AUTO can generate a discriminated-union coder for it. Call this once (at
// init time, typically) for every union type passed to Encoder[T]/Decoder[T].
func RegisterUnion(iface reflect.Type, cases ...UnionCase) {
	unionRegistryMu.Lock()
	defer unionRegistryMu.Unlock()
	unionRegistry[iface] = unionDescriptor{cases: cases}
}

// RegisterUnionType is RegisterUnion's generic convenience form:
// RegisterUnionType[Shape](auto.UnionCase{...}, ...).
func RegisterUnionType[I any](cases ...UnionCase) {
	RegisterUnion(reflect.TypeOf((*I)(nil)).Elem(), cases...)
}

func lookupUnion(t reflect.Type) (unionDescriptor, bool) {
	unionRegistryMu.RLock()
	defer unionRegistryMu.RUnlock()
	d, ok := unionRegistry[t]
	return d, ok
}
