// Package render turns a finished analysis result into human-facing output.
// Presentation only: it never inspects the document, only the report.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"a11yscan/analyze"
)

// categoryColors maps each report bucket to its terminal color.
var categoryColors = map[analyze.Category]*color.Color{
	analyze.CategoryErrors:         color.New(color.FgRed, color.Bold),
	analyze.CategoryContrastErrors: color.New(color.FgRed),
	analyze.CategoryAlerts:         color.New(color.FgYellow, color.Bold),
	analyze.CategoryFeatures:       color.New(color.FgYellow),
	analyze.CategoryStructural:     color.New(color.FgCyan),
	analyze.CategoryElements:       color.New(color.FgMagenta),
	analyze.CategoryAria:           color.New(color.FgBlue),
}

// Console writes a color-coded report to w. Empty categories are skipped;
// the summary line always prints.
func Console(w io.Writer, res *analyze.Result) {
	for _, cat := range analyze.Categories() {
		issues := res.Report.Category(cat)
		if len(issues) == 0 {
			continue
		}

		c := categoryColors[cat]
		c.Fprintf(w, "%s (%d)\n", strings.ToUpper(string(cat)), len(issues))
		for _, is := range issues {
			fmt.Fprintf(w, "  %s\n", firstLine(is.Element))
			if is.HasLabel != nil {
				fmt.Fprintf(w, "    has label: %v\n", *is.HasLabel)
			}
			for _, s := range is.Suggestions {
				fmt.Fprintf(w, "    - %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	s := res.Summary
	fmt.Fprintf(w, "summary: %d issues (errors %d, contrast %d, alerts %d, features %d, structural %d, elements %d, aria %d)\n",
		s.Total(), s.Errors, s.ContrastErrors, s.Alerts, s.Features, s.Structural, s.Elements, s.Aria)
}

// firstLine truncates serialized markup to its first line for compact
// listing.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const max = 120
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
