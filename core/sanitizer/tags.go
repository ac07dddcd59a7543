package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"trim_lower":  TrimLower,
		"single_line": SingleLine,
		"text":        Text,
		"no_control":  RemoveControlChars,
	}
)

// Register adds or replaces a named sanitizer usable in `sanitize` tags.
func Register(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Struct applies the comma-separated sanitizers from each string field's
// `sanitize` tag, in order. `max:N` truncates to N runes. Unknown names are
// ignored. Nested structs are walked.
//
//	type Form struct {
//		Email string `sanitize:"no_control,trim_lower"`
//		Body  string `sanitize:"no_control,text,max:5000"`
//	}
func Struct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	sanitizeStruct(rv.Elem())
	return nil
}

func sanitizeStruct(rv reflect.Value) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(apply(field.String(), tag))
			}
		case reflect.Struct:
			sanitizeStruct(field)
		case reflect.Pointer:
			if !field.IsNil() && field.Elem().Kind() == reflect.Struct {
				sanitizeStruct(field.Elem())
			}
		}
	}
}

func apply(value, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if n, ok := strings.CutPrefix(name, "max:"); ok {
			if limit, err := strconv.Atoi(n); err == nil {
				value = MaxLength(value, limit)
			}
			continue
		}
		if fn, ok := registry[name]; ok {
			value = fn(value)
		}
	}
	return value
}
