package loader

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/erraggy/contractdiff/oaserrors"
)

// Loaded is the result of loading one contract document.
type Loaded struct {
	// Document is the decoded top-level JSON object
	Document Document
	// Source is the file path or identifier the document came from
	Source string
	// Size is the size of the raw content in bytes
	Size int64
	// Warnings holds non-fatal validation findings (only with WithValidation)
	Warnings []string
}

// Option configures a load.
type Option func(*loadConfig)

type loadConfig struct {
	logger   Logger
	validate bool
	ctx      context.Context
}

// WithLogger sets the logger used while loading.
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithValidation enables OpenAPI 3 structural validation of the raw document.
// Default: false
func WithValidation(enabled bool) Option {
	return func(cfg *loadConfig) {
		cfg.validate = enabled
	}
}

// WithContext sets the context used for validation.
func WithContext(ctx context.Context) Option {
	return func(cfg *loadConfig) {
		if ctx != nil {
			cfg.ctx = ctx
		}
	}
}

func applyOptions(opts []Option) *loadConfig {
	cfg := &loadConfig{logger: NopLogger{}, ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads the contract at path and decodes it.
func Load(path string, opts ...Option) (*Loaded, error) {
	cfg := applyOptions(opts)

	data, err := os.ReadFile(path) //nolint:gosec // G304: reading a user-supplied contract path is the point
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oaserrors.LoadError{Path: path, NotFound: true, Cause: err}
		}
		return nil, &oaserrors.LoadError{Path: path, Cause: err}
	}

	return decode(data, path, cfg)
}

// LoadBytes decodes a contract from memory. source is used in error messages.
func LoadBytes(data []byte, source string, opts ...Option) (*Loaded, error) {
	return decode(data, source, applyOptions(opts))
}

func decode(data []byte, source string, cfg *loadConfig) (*Loaded, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.LoadError{Path: source, Malformed: true, Cause: err}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.LoadError{Path: source, Malformed: true, Message: "top-level value must be a JSON object"}
	}

	loaded := &Loaded{
		Document: Document(obj),
		Source:   source,
		Size:     int64(len(data)),
	}

	log := cfg.logger.With("source", source)
	if cfg.validate {
		loaded.Warnings = validateOpenAPI(cfg.ctx, data)
		for _, w := range loaded.Warnings {
			log.Warn("contract failed OpenAPI validation", "problem", w)
		}
	}
	log.Debug("loaded contract", "bytes", loaded.Size, "paths", len(loaded.Document.Paths()))

	return loaded, nil
}
