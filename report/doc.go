// Package report renders a differ.DiffReport as text, JSON or YAML and maps
// it to a process exit code.
//
// The JSON and YAML forms share one structure with the keys summary,
// metadata, changes, breaking_changes, additive_changes and
// informational_changes. The text form is meant for terminals and CI logs.
//
// Format validates the requested format before rendering anything, so an
// unsupported format never produces partial output:
//
//	out, err := report.Format(r, "yaml")
//	if err != nil {
//		return err // *oaserrors.FormatError for unknown formats
//	}
//	fmt.Println(out)
//	os.Exit(report.ExitCode(r))
package report
