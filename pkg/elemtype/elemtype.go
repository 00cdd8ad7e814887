// Package elemtype implements the declared element type of a container.
//
// Containers are generic, but their element type may still be an interface type such as any.
// A declared Type lets them reject data of the wrong dynamic type at the operation boundary.
package elemtype

import (
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrTypeMismatch errorkit.Error = "ErrTypeMismatch"

var (
	signed    = reflect.TypeFor[int64]()
	unsigned  = reflect.TypeFor[uint64]()
	floating  = reflect.TypeFor[float64]()
	complexes = reflect.TypeFor[complex128]()
)

// Type is a normalised type descriptor.
// The zero Type is undeclared.
type Type struct {
	rtype reflect.Type
}

// Of returns the declared Type for T.
func Of[T any]() Type { return FromReflect(reflect.TypeFor[T]()) }

// TypeOf returns the declared Type matching the dynamic type of v.
func TypeOf(v any) Type { return FromReflect(reflect.TypeOf(v)) }

// Int is the default element type.
func Int() Type { return Of[int]() }

func FromReflect(rtype reflect.Type) Type {
	return Type{rtype: Normalize(rtype)}
}

// Normalize maps a type to the type that is used for comparison,
// so that distinct numeric widths of the same family compare as equal.
func Normalize(rtype reflect.Type) reflect.Type {
	if rtype == nil {
		return nil
	}
	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rtype.PkgPath() != "" {
			return rtype
		}
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rtype.PkgPath() != "" {
			return rtype
		}
		return unsigned
	case reflect.Float32, reflect.Float64:
		if rtype.PkgPath() != "" {
			return rtype
		}
		return floating
	case reflect.Complex64, reflect.Complex128:
		if rtype.PkgPath() != "" {
			return rtype
		}
		return complexes
	default:
		return rtype
	}
}

func (t Type) IsZero() bool { return t.rtype == nil }

func (t Type) Reflect() reflect.Type { return t.rtype }

func (t Type) String() string {
	if t.rtype == nil {
		return "<undeclared>"
	}
	return t.rtype.String()
}

func (t Type) Equal(oth Type) bool { return t.rtype == oth.rtype }

// Accepts reports whether a value of the given type may be stored under the declared Type.
func (t Type) Accepts(rtype reflect.Type) bool {
	if t.rtype == nil || rtype == nil {
		return false
	}
	if t.rtype.Kind() == reflect.Interface {
		return rtype.Implements(t.rtype)
	}
	return Normalize(rtype) == t.rtype
}

// Check validates a datum against the declared Type.
func (t Type) Check(v any) error {
	if t.Accepts(reflect.TypeOf(v)) {
		return nil
	}
	return ErrTypeMismatch.F("type(datum) %s != %s", typeName(v), t.String())
}

// For resolves the declared element type of a container holding T.
//
// Without a declaration, a concrete T declares itself,
// and an interface T falls back to the default Int element type when Int implements it.
// Any other interface T declares itself.
// A declaration that no value of T could ever satisfy is an ErrTypeMismatch.
func For[T any](declared Type) (Type, error) {
	static := reflect.TypeFor[T]()
	if declared.IsZero() {
		if static.Kind() == reflect.Interface && signed.Implements(static) {
			return Int(), nil
		}
		return FromReflect(static), nil
	}
	if static.Kind() == reflect.Interface {
		if declared.rtype.Kind() == reflect.Interface || declared.rtype.Implements(static) {
			return declared, nil
		}
		return Type{}, ErrTypeMismatch.F("declared %s does not implement %s", declared.String(), static.String())
	}
	if !declared.Accepts(static) {
		return Type{}, ErrTypeMismatch.F("declared %s can not hold %s", declared.String(), static.String())
	}
	return declared, nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
