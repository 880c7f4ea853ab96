package loader

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// validateOpenAPI checks the raw document against the OpenAPI 3 structure.
// External references are never followed.
func validateOpenAPI(ctx context.Context, data []byte) []string {
	l := openapi3.NewLoader()
	l.Context = ctx
	l.IsExternalRefsAllowed = false

	doc, err := l.LoadFromData(data)
	if err != nil {
		return []string{fmt.Sprintf("not a loadable OpenAPI 3 document: %v", err)}
	}
	if err := doc.Validate(ctx); err != nil {
		return []string{err.Error()}
	}
	return nil
}
