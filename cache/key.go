package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// KeySeparator delimits the segments of a cache key.
const KeySeparator = ":"

// Key builds a deterministic cache key of the form
//
//	<prefix><domain>:<method>:<arg>[:<arg>...]
//
// The method segment is snake_cased so that Go method names land in the same
// namespace the invalidation patterns target. Identical arguments always
// produce the same key, so repeated calls hit the same entry.
func Key(prefix, domain, method string, args ...any) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, domain, toSnake(method))

	for _, arg := range args {
		parts = append(parts, serializeValue(arg))
	}

	return prefix + strings.Join(parts, KeySeparator)
}

// serializeValue renders a single argument deterministically. Pointers are
// dereferenced, fmt.Stringer implementations (uuid.UUID and friends) use
// their string form, basic kinds interpolate directly, and everything else
// falls back to JSON. encoding/json sorts map keys, which keeps the fallback
// stable across runs.
func serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return serializeValue(rv.Elem().Interface())

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprintf("%v", v)
	}

	return jsonFallback(v)
}

// jsonFallback serializes composite arguments (pagination params, search
// queries) as JSON. If marshaling fails we fall back to the type name rather
// than panicking; the resulting key is still deterministic per argument type.
func jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("fallback:%s", reflect.TypeOf(v).String())
	}
	return string(data)
}
