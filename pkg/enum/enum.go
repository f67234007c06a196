package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers value as a member of its enum type. The string form of the
// value is used as its name.
func New[T comparable](value T) T {
	return NewNamed(value, fmt.Sprint(value))
}

// NewNamed registers value under an explicit name.
func NewNamed[T comparable](value T, name string) T {
	t := reflect.TypeOf(value)
	key := t.PkgPath() + "." + t.Name()
	if _, ok := enumManager[key]; !ok {
		enumManager[key] = enum[T]{toEnum: make(map[string]T), toString: make(map[T]string)}
	}

	e := enumManager[key].(enum[T])
	e.toEnum[name] = value
	e.toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := lookup[T]()
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or an empty string if the
// value is not a member of its enum.
func ToString[T comparable](value T) string {
	e, ok := lookup[T]()
	if !ok {
		return ""
	}

	return e.toString[value]
}

// IsValid reports whether value has been registered.
func IsValid[T comparable](value T) bool {
	e, ok := lookup[T]()
	if !ok {
		return false
	}

	_, ok = e.toString[value]
	return ok
}

func lookup[T comparable]() (enum[T], bool) {
	var defaultT T
	t := reflect.TypeOf(defaultT)
	e, ok := enumManager[t.PkgPath()+"."+t.Name()]
	if !ok {
		return enum[T]{}, false
	}

	return e.(enum[T]), true
}
