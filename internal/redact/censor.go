package redact

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
)

// Censor returns a deep copy of v in which the value of every key found in
// the set is replaced with [Redacted], at any nesting depth, inside both
// objects and arrays. A matching key is not recursed into: an object-valued
// sensitive field becomes the placeholder string as a whole.
//
// nil, []byte and non-container values are returned unchanged. v itself is
// never mutated.
//
// Values that are not already map[string]any or []any (structs, typed maps
// and slices, pointers, and anything with its own MarshalJSON or MarshalText)
// are first projected onto their JSON shape, so the keys that are matched are
// the JSON field names a client would see. If that
// projection fails (for example on a cyclic value) v is returned as is.
func (s *KeySet) Censor(v any) any {
	snapshot := *s.load()
	return censor(project(v), snapshot)
}

// SafeSerialize censors v and then encodes it as JSON. Redaction always
// happens before serialization, so a custom MarshalJSON can never carry a
// sensitive value past the censor.
func (s *KeySet) SafeSerialize(v any) ([]byte, error) {
	projected, err := projectStrict(v)
	if err != nil {
		return nil, fmt.Errorf("error projecting value for safe serialization: %w", err)
	}

	data, err := json.Marshal(censor(projected, *s.load()))
	if err != nil {
		return nil, fmt.Errorf("error serializing censored value: %w", err)
	}

	return data, nil
}

func censor(v any, sensitive keys) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, child := range value {
			if _, ok := sensitive[k]; ok {
				out[k] = Redacted
				continue
			}
			out[k] = censor(project(child), sensitive)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, child := range value {
			out[i] = censor(project(child), sensitive)
		}
		return out
	default:
		return v
	}
}

// Project returns the JSON shape of v: map[string]any for objects, []any for
// arrays, json.Number for numbers. Values that cannot be encoded are
// returned as is.
func Project(v any) any {
	return project(v)
}

// project returns v unchanged when it is nil, a primitive, or already a
// generic JSON container, and its JSON projection otherwise.
func project(v any) any {
	projected, err := projectStrict(v)
	if err != nil {
		return v
	}
	return projected
}

func projectStrict(v any) (any, error) {
	switch v.(type) {
	case nil, map[string]any, []any, json.Number, string, bool, []byte:
		return v, nil
	case json.RawMessage:
		return decode(v.(json.RawMessage))
	case json.Marshaler, encoding.TextMarshaler:
		return marshalAndDecode(v)
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Pointer, reflect.Interface:
	default:
		return v, nil
	}

	return marshalAndDecode(v)
}

func marshalAndDecode(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
