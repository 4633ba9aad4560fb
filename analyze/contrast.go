package analyze

import (
	"fmt"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"a11yscan/colormath"
)

// minContrastRatio is the WCAG AA threshold for normal text.
const minContrastRatio = 4.5

var (
	// Leading boundary keeps "color:" from matching inside
	// "background-color:".
	fgColorRe = regexp.MustCompile(`(?i)(?:^|[;\s])color\s*:\s*([^;}]+)`)
	bgColorRe = regexp.MustCompile(`(?i)background-color\s*:\s*([^;}]+)`)
)

// contrastPass checks inline-styled form elements for insufficient contrast
// between color and background-color. Elements missing either declaration,
// or declaring colors in a form the parser does not recognize, are skipped
// silently: only inline style strings are inspected, never stylesheets.
func contrastPass(doc *html.Node) *Report {
	rep := NewReport()

	elems := findAllByTag(doc, atom.Input, atom.Textarea, atom.Select, atom.Label, atom.Fieldset)
	for _, n := range elems {
		style, ok := attr(n, "style")
		if !ok {
			continue
		}

		fg, ok := styleColor(fgColorRe, style)
		if !ok {
			continue
		}
		bg, ok := styleColor(bgColorRe, style)
		if !ok {
			continue
		}

		ratio := colormath.ContrastRatio(fg, bg)
		if ratio >= minContrastRatio {
			continue
		}

		rep.add(CategoryContrastErrors, Issue{
			Element: renderNode(n),
			Suggestions: []string{
				fmt.Sprintf("Contrast ratio %.2f is below the required %.1f:1.", ratio, minContrastRatio),
				"Increase the difference between the text color and the background color.",
			},
			Snippet: snippetFor(n),
			Context: collectText(n),
		})
	}
	return rep
}

// styleColor extracts and parses one color declaration from an inline style
// string.
func styleColor(re *regexp.Regexp, style string) (colormath.Color, bool) {
	m := re.FindStringSubmatch(style)
	if m == nil {
		return colormath.Color{}, false
	}
	return colormath.Parse(m[1])
}
