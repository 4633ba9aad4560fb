package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"a11yscan/analyze"
)

func sampleResult() *analyze.Result {
	rep := analyze.NewReport()
	has := false
	rep.Errors = append(rep.Errors, analyze.Issue{
		Element:     `<input name="q">`,
		Suggestions: []string{"Add a label element associated with this field or an aria-label attribute."},
		Snippet:     "<form>\n <input name=\"q\">\n</form>\n",
		Context:     "Search <script>alert(1)</script> here",
		HasLabel:    &has,
	})
	rep.Elements = append(rep.Elements, analyze.Issue{
		Element:     `<a href="#">Click</a>`,
		Suggestions: []string{`Replace href="#" with a real destination, or use a button element for an action.`},
	})
	return &analyze.Result{ID: "test-id", Report: rep, Summary: rep.Summary()}
}

func TestConsole(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var sb strings.Builder
	Console(&sb, sampleResult())
	out := sb.String()

	for _, want := range []string{"ERRORS (1)", "ELEMENTS (1)", "has label: false", "summary: 2 issues"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "CONTRAST_ERRORS") {
		t.Error("empty categories should be skipped")
	}
}

func TestHTML(t *testing.T) {
	var sb strings.Builder
	if err := HTML(&sb, sampleResult()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "test-id") {
		t.Error("page should carry the analysis id")
	}
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("context markup must be sanitized")
	}
	// The snippet markup must be escaped, not executed.
	if !strings.Contains(out, "&lt;input") && !strings.Contains(out, "&lt;form&gt;") {
		t.Errorf("snippet should appear escaped:\n%s", out)
	}
	if !strings.Contains(out, "2 issues in total") {
		t.Error("total missing")
	}
}
