package loader

import "github.com/erraggy/contractdiff/internal/maputil"

// Document is a decoded contract: the top-level JSON object of an OpenAPI
// description. Accessors tolerate missing and malformed sections.
type Document map[string]any

// Info returns the info object, or nil.
func (d Document) Info() map[string]any {
	return maputil.Map(d["info"])
}

// Paths returns the paths object, or nil.
func (d Document) Paths() map[string]any {
	return maputil.Map(d["paths"])
}

// Servers returns the servers array, or nil.
func (d Document) Servers() []any {
	return maputil.Slice(d["servers"])
}

// Schemas returns components.schemas, or nil.
func (d Document) Schemas() map[string]any {
	return maputil.Map(maputil.Lookup(d, "components", "schemas"))
}

// Version returns info.version and whether it was declared as a string.
func (d Document) Version() (string, bool) {
	v, ok := d.Info()["version"].(string)
	return v, ok
}

// Title returns info.title, or "" when absent.
func (d Document) Title() string {
	return maputil.String(d.Info()["title"])
}
