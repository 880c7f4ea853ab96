package maputil

// Map returns v as a JSON object, or nil when v is not one.
func Map(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Slice returns v as a JSON array, or nil when v is not one.
func Slice(v any) []any {
	s, _ := v.([]any)
	return s
}

// Bool reports whether v is the JSON literal true.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// String returns v as a string, or "" when v is not one.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Lookup walks a chain of object keys and returns the value at the end,
// or nil when any step is missing or not an object.
func Lookup(m map[string]any, keys ...string) any {
	var cur any = m
	for _, k := range keys {
		obj := Map(cur)
		if obj == nil {
			return nil
		}
		cur = obj[k]
	}
	return cur
}
