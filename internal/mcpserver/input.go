package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/contractdiff/internal/options"
	"github.com/erraggy/contractdiff/loader"
)

// inlineSource names inline content in load errors.
const inlineSource = "<inline>"

// specInput represents the two ways a contract can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI JSON contract on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI JSON contract content"`
}

// resolve loads the contract from whichever input was provided.
func (s specInput) resolve(ctx context.Context, opts ...loader.Option) (*loader.Loaded, error) {
	const msg = "exactly one of file or content must be provided"
	if err := options.ValidateSingleInputSource(msg, msg, s.File != "", s.Content != ""); err != nil {
		return nil, err
	}

	opts = append([]loader.Option{loader.WithContext(ctx), loader.WithValidation(cfg.ValidateInputs)}, opts...)

	if s.File != "" {
		return loader.Load(s.File, opts...)
	}

	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CONTRACTDIFF_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return loader.LoadBytes([]byte(s.Content), inlineSource, opts...)
}
