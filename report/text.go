package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erraggy/contractdiff/differ"
	"github.com/erraggy/contractdiff/internal/cliutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	reportTitle = "API CONTRACT DIFF REPORT"
	bannerWidth = 60
)

var labelCaser = cases.Title(language.English)

// label turns a report key such as "total_changes" into "Total Changes".
func label(key string) string {
	return labelCaser.String(strings.ReplaceAll(key, "_", " "))
}

func formatText(r *differ.DiffReport) string {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	cliutil.Writef(&b, "%s\n%s\n%s\n", banner, reportTitle, banner)

	writeHeading(&b, "SUMMARY")
	for _, e := range r.Summary.Entries() {
		cliutil.Writef(&b, "%s: %v\n", label(e.Key), e.Value)
	}

	sections := []struct {
		title string
		glyph string
		items []differ.ChangeItem
	}{
		{"BREAKING CHANGES", "❌", r.BreakingChanges},
		{"ADDITIVE CHANGES", "✅", r.AdditiveChanges},
		{"INFORMATIONAL CHANGES", "📝", r.InformationalChanges},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		writeHeading(&b, s.title+" "+s.glyph)
		for _, c := range s.items {
			writeChange(&b, s.glyph, c)
		}
	}

	writeHeading(&b, "METADATA")
	for _, e := range r.Metadata.Entries() {
		cliutil.Writef(&b, "%s: %v\n", label(e.Key), e.Value)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeHeading(b *strings.Builder, title string) {
	cliutil.Writef(b, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

func writeChange(b *strings.Builder, glyph string, c differ.ChangeItem) {
	cliutil.Writef(b, "%s %s\n", glyph, c.Description)
	cliutil.Writef(b, "   Location: %s\n", c.Location)
	cliutil.Writef(b, "   Severity: %s\n", c.Severity)
	if c.OldValue != nil {
		cliutil.Writef(b, "   Old Value: %s\n", renderValue(c.OldValue))
	}
	if c.NewValue != nil {
		cliutil.Writef(b, "   New Value: %s\n", renderValue(c.NewValue))
	}
}

// renderValue prints strings as-is and everything else as compact JSON.
func renderValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
