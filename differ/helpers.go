package differ

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/erraggy/contractdiff/internal/httputil"
	"github.com/erraggy/contractdiff/internal/maputil"
)

// operations returns the HTTP method entries of a path item.
func operations(pathItem map[string]any) map[string]any {
	ops := make(map[string]any, len(pathItem))
	for k, v := range pathItem {
		if httputil.IsMethod(k) {
			ops[k] = v
		}
	}
	return ops
}

// operationLocation renders "METHOD /path".
func operationLocation(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// valuesEqual compares two decoded JSON values.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// quote renders a scalar for a description, or "none" when absent.
func quote(v any) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("'%v'", v)
}

// parameterIdentity returns the matching key ("name:in") and display name of
// a parameter. Reference parameters without a name are identified by $ref.
func parameterIdentity(param map[string]any) (key, name, in string) {
	name = maputil.String(param["name"])
	in = maputil.String(param["in"])
	if name == "" && in == "" {
		if ref := maputil.String(param["$ref"]); ref != "" {
			return ref, ref, ""
		}
	}
	return name + ":" + in, name, in
}

// describeParameter renders "'id' (query)".
func describeParameter(name, in string) string {
	if in == "" {
		return fmt.Sprintf("'%s'", name)
	}
	return fmt.Sprintf("'%s' (%s)", name, in)
}
