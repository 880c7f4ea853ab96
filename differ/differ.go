package differ

import (
	"fmt"
	"time"

	"github.com/erraggy/contractdiff/internal/options"
	"github.com/erraggy/contractdiff/internal/severity"
	"github.com/erraggy/contractdiff/loader"
	"github.com/erraggy/contractdiff/oaserrors"
)

// DifferVersion is the version of the classification rules, echoed in every
// report's metadata.
const DifferVersion = "1.0.0"

// ChangeType classifies how a change affects existing consumers
type ChangeType string

const (
	// ChangeTypeBreaking indicates existing consumers will break
	ChangeTypeBreaking ChangeType = "breaking"
	// ChangeTypeAdditive indicates a backward compatible addition or relaxation
	ChangeTypeAdditive ChangeType = "additive"
	// ChangeTypeInformational indicates a change with no compatibility impact
	ChangeTypeInformational ChangeType = "informational"
	// ChangeTypeDeprecated indicates an element was newly marked deprecated
	ChangeTypeDeprecated ChangeType = "deprecated"
)

// ChangeCategory indicates which structural element of the contract changed
type ChangeCategory string

const (
	// CategoryPath indicates a path/endpoint change
	CategoryPath ChangeCategory = "path"
	// CategoryMethod indicates an HTTP method change on a path
	CategoryMethod ChangeCategory = "method"
	// CategoryParameter indicates a parameter change
	CategoryParameter ChangeCategory = "parameter"
	// CategoryRequestBody indicates a request body change
	CategoryRequestBody ChangeCategory = "request_body"
	// CategoryResponse indicates a response status code change
	CategoryResponse ChangeCategory = "response"
	// CategorySchema indicates a components.schemas change
	CategorySchema ChangeCategory = "schema"
	// CategoryServer indicates a server URL change
	CategoryServer ChangeCategory = "server"
	// CategoryVersion indicates an info.version change
	CategoryVersion ChangeCategory = "version"
	// CategoryTitle indicates an info.title change
	CategoryTitle ChangeCategory = "title"
	// CategoryOperation indicates an operation-level attribute change (operationId, deprecated)
	CategoryOperation ChangeCategory = "operation"
)

// Severity indicates the impact level of a change
type Severity = severity.Severity

const (
	// SeverityLow indicates changes consumers can safely ignore
	SeverityLow = severity.SeverityLow
	// SeverityMedium indicates changes that may affect some consumers
	SeverityMedium = severity.SeverityMedium
	// SeverityHigh indicates changes that break consumers of the element
	SeverityHigh = severity.SeverityHigh
	// SeverityCritical is reserved for changes that break every consumer
	SeverityCritical = severity.SeverityCritical
)

// ChangeItem is one detected difference between the old and new contracts
type ChangeItem struct {
	// Type classifies the compatibility impact
	Type ChangeType
	// Category names the kind of element that changed
	Category ChangeCategory
	// Location points into the contract (e.g., "POST /api/users.parameters[id]")
	Location string
	// Description is a one-sentence summary of the change
	Description string
	// OldValue is the element in the old contract (nil when it did not exist)
	OldValue any
	// NewValue is the element in the new contract (nil when it does not exist)
	NewValue any
	// Severity is the impact level
	Severity Severity
}

// Symbol returns the glyph used for this change's type in text output.
func (c ChangeItem) Symbol() string {
	switch c.Type {
	case ChangeTypeBreaking:
		return "❌"
	case ChangeTypeAdditive:
		return "✅"
	case ChangeTypeInformational:
		return "📝"
	case ChangeTypeDeprecated:
		return "⚠️"
	default:
		return "·"
	}
}

// String returns a formatted single-line representation of the change
func (c ChangeItem) String() string {
	return fmt.Sprintf("%s [%s/%s] %s: %s", c.Symbol(), c.Type, c.Severity, c.Location, c.Description)
}

// Differ compares contract documents
type Differ struct {
	// StrictMode is recorded in the report metadata. It does not change any
	// classification rule.
	StrictMode bool
	// Logger receives debug output about each compared section.
	// Defaults to loader.NopLogger.
	Logger loader.Logger
	// Now returns the comparison time. Defaults to time.Now.
	Now func() time.Time
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{
		Logger: loader.NopLogger{},
		Now:    time.Now,
	}
}

// Diff compares two decoded contracts with default settings.
func Diff(old, cur loader.Document) *DiffReport {
	return New().Diff(old, cur)
}

// Diff compares old against cur and returns the assembled report.
// Sections are compared in order: paths, info, servers, components.
func (d *Differ) Diff(old, cur loader.Document) *DiffReport {
	log := d.logger()

	var changes []ChangeItem
	sections := []struct {
		name string
		fn   func(old, cur loader.Document) []ChangeItem
	}{
		{"paths", d.diffPaths},
		{"info", d.diffInfo},
		{"servers", d.diffServers},
		{"components", d.diffComponents},
	}
	for _, s := range sections {
		found := s.fn(old, cur)
		log.Debug("compared section", "section", s.name, "changes", len(found))
		changes = append(changes, found...)
	}

	r := d.buildReport(old, cur, changes)
	log.Info("diff complete",
		"total", r.Summary.TotalChanges,
		"breaking", r.Summary.BreakingChanges,
		"additive", r.Summary.AdditiveChanges,
		"informational", r.Summary.InformationalChanges,
		"deprecated", r.Summary.DeprecatedChanges,
	)
	return r
}

func (d *Differ) logger() loader.Logger {
	if d.Logger == nil {
		return loader.NopLogger{}
	}
	return d.Logger
}

func (d *Differ) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Option is a function that configures a diff operation
type Option func(*diffConfig) error

// diffConfig holds configuration for a diff operation
type diffConfig struct {
	// Input sources (exactly one old and one new must be set)
	oldFilePath *string
	oldDocument loader.Document
	newFilePath *string
	newDocument loader.Document

	strictMode bool
	logger     loader.Logger
	now        func() time.Time
	loaderOpts []loader.Option
	onLoaded   func(role string, l *loader.Loaded)
}

// DiffWithOptions loads (when needed) and compares two contracts using
// functional options.
//
// Example:
//
//	r, err := differ.DiffWithOptions(
//	    differ.WithOldFilePath("contracts/openapi/public-v1.json"),
//	    differ.WithNewFilePath("build/openapi.json"),
//	    differ.WithStrictMode(true),
//	)
func DiffWithOptions(opts ...Option) (*DiffReport, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	loaderOpts := append([]loader.Option{loader.WithLogger(cfg.logger)}, cfg.loaderOpts...)

	old, err := resolveDocument("old", cfg.oldFilePath, cfg.oldDocument, loaderOpts, cfg.onLoaded)
	if err != nil {
		return nil, err
	}
	cur, err := resolveDocument("new", cfg.newFilePath, cfg.newDocument, loaderOpts, cfg.onLoaded)
	if err != nil {
		return nil, err
	}

	d := &Differ{StrictMode: cfg.strictMode, Logger: cfg.logger, Now: cfg.now}
	return d.Diff(old, cur), nil
}

func resolveDocument(role string, path *string, doc loader.Document, opts []loader.Option, onLoaded func(string, *loader.Loaded)) (loader.Document, error) {
	if path == nil {
		return doc, nil
	}
	loaded, err := loader.Load(*path, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s spec: %w", role, err)
	}
	if onLoaded != nil {
		onLoaded(role, loaded)
	}
	return loaded.Document, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*diffConfig, error) {
	cfg := &diffConfig{
		logger: loader.NopLogger{},
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := exactlyOne("old", cfg.oldFilePath != nil, cfg.oldDocument != nil); err != nil {
		return nil, err
	}
	if err := exactlyOne("new", cfg.newFilePath != nil, cfg.newDocument != nil); err != nil {
		return nil, err
	}

	return cfg, nil
}

func exactlyOne(role string, hasPath, hasDoc bool) error {
	prefix := titleRole(role)
	err := options.ValidateSingleInputSource(
		fmt.Sprintf("must specify the %s spec (use With%sFilePath or With%sDocument)", role, prefix, prefix),
		fmt.Sprintf("must specify exactly one %s spec", role),
		hasPath, hasDoc,
	)
	if err != nil {
		return &oaserrors.ConfigError{Option: role, Message: err.Error()}
	}
	return nil
}

func titleRole(role string) string {
	if role == "old" {
		return "Old"
	}
	return "New"
}

// WithOldFilePath specifies a file path for the baseline contract
func WithOldFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.oldFilePath = &path
		return nil
	}
}

// WithOldDocument specifies an already decoded baseline contract
func WithOldDocument(doc loader.Document) Option {
	return func(cfg *diffConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "old", Message: "document must not be nil"}
		}
		cfg.oldDocument = doc
		return nil
	}
}

// WithNewFilePath specifies a file path for the candidate contract
func WithNewFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.newFilePath = &path
		return nil
	}
}

// WithNewDocument specifies an already decoded candidate contract
func WithNewDocument(doc loader.Document) Option {
	return func(cfg *diffConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "new", Message: "document must not be nil"}
		}
		cfg.newDocument = doc
		return nil
	}
}

// WithStrictMode records strict mode in the report metadata
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *diffConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithLogger sets the logger for loading and comparison
func WithLogger(l loader.Logger) Option {
	return func(cfg *diffConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithClock overrides the time source used for metadata.compared_at
func WithClock(now func() time.Time) Option {
	return func(cfg *diffConfig) error {
		if now != nil {
			cfg.now = now
		}
		return nil
	}
}

// WithLoaderOptions passes extra options to the loader for file inputs
func WithLoaderOptions(opts ...loader.Option) Option {
	return func(cfg *diffConfig) error {
		cfg.loaderOpts = append(cfg.loaderOpts, opts...)
		return nil
	}
}

// WithLoadHook registers a callback invoked after each file input is loaded.
// role is "old" or "new".
func WithLoadHook(fn func(role string, l *loader.Loaded)) Option {
	return func(cfg *diffConfig) error {
		cfg.onLoaded = fn
		return nil
	}
}
