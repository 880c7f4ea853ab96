// Package contractdiff compares two OpenAPI 3.x contract documents and reports
// how a consumer of the old contract is affected by the new one.
//
// # Overview
//
// The library is split into three packages that run in sequence:
//
//   - loader: read and decode a JSON OpenAPI document
//   - differ: walk both documents and classify every difference
//   - report: render a DiffReport as text, JSON, or YAML
//
// Each change is classified as breaking, additive, informational, or
// deprecated, and carries a severity of low, medium, high, or critical.
//
// # Quick Start
//
//	old, err := loader.Load("contracts/openapi/public-v1.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cur, err := loader.Load("build/openapi.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := differ.Diff(old.Document, cur.Document)
//	out, err := report.Format(r, report.FormatText)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//	os.Exit(report.ExitCode(r))
//
// # Command Line
//
// The diff-contracts command wraps the same pipeline and exits with status 1
// whenever breaking changes are found, which makes it suitable as a CI gate:
//
//	diff-contracts --new-spec build/openapi.json --format json --output diff.json
package contractdiff
