/*
Package differ compares two OpenAPI contracts and classifies every difference
by its impact on existing consumers.

# Overview

The differ walks four sections of each contract, in order: paths, info,
servers and components. Each detected difference becomes a ChangeItem with a
type, a category, a location and a severity. The resulting DiffReport holds
every change in detection order, filtered views for breaking, additive and
informational changes, summary counts and metadata about the comparison.

Comparison is shallow by design of the rules: parameters and request bodies
are compared by presence and by their required flag, responses by status
code, servers by url and schemas by name. The contents of a schema are never
compared.

# Change Types

  - ChangeTypeBreaking: existing consumers will break (removed path, removed
    required parameter, removed 2xx response, ...)
  - ChangeTypeAdditive: backward compatible additions and relaxations
  - ChangeTypeInformational: no compatibility impact (version bumps, renamed
    operation IDs, removed error responses)
  - ChangeTypeDeprecated: an operation was newly marked deprecated

Deprecated changes are counted in Summary.DeprecatedChanges and listed in
Changes, but do not appear in any of the filtered views.

# Usage

For one-off comparisons of files on disk, use DiffWithOptions:

	report, err := differ.DiffWithOptions(
		differ.WithOldFilePath("contracts/openapi/public-v1.json"),
		differ.WithNewFilePath("build/openapi.json"),
	)
	if err != nil {
		log.Fatal(err)
	}
	if report.HasBreakingChanges() {
		for _, c := range report.BreakingChanges {
			fmt.Println(c)
		}
	}

When the contracts are already decoded, use Diff or a configured Differ:

	d := differ.New()
	d.StrictMode = true
	report := d.Diff(oldDoc, newDoc)

# Strict Mode

StrictMode is echoed in Metadata.StrictMode. No classification rule depends
on it.

# Related Packages

  - [github.com/erraggy/contractdiff/loader] - Reads contracts from disk
  - [github.com/erraggy/contractdiff/report] - Renders reports as text, JSON or YAML
*/
package differ
