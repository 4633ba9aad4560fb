package analyze

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fieldFacts captures everything the label rules inspect about one
// control-like element before any rule runs.
type fieldFacts struct {
	field      *html.Node
	labeled    bool   // <label for=id> anywhere in the document, or ancestor <label>
	ariaLabel  bool   // aria-label attribute present
	parentText string // flattened text of the immediate parent element
}

// labelRule pairs one predicate with the category it assigns and the
// suggestion it contributes when triggered.
type labelRule struct {
	when       func(fieldFacts) bool
	category   Category
	suggestion string
}

// labelRules is evaluated in order for every field. Every triggered rule
// contributes its suggestion; the last triggered rule decides the category.
var labelRules = []labelRule{
	{
		when:       func(f fieldFacts) bool { return !f.labeled && !f.ariaLabel },
		category:   CategoryErrors,
		suggestion: "Add a label element associated with this field or an aria-label attribute.",
	},
	{
		when:       func(f fieldFacts) bool { return f.parentText != "" && !f.ariaLabel },
		category:   CategoryAria,
		suggestion: "Consider providing additional context with aria-label or aria-describedby.",
	},
	{
		when:       func(f fieldFacts) bool { return hasAttr(f.field, "placeholder") },
		category:   CategoryElements,
		suggestion: "Do not rely on placeholder text as a substitute for a visible label.",
	},
	{
		when:       func(f fieldFacts) bool { return hasAttr(f.field, "required") },
		category:   CategoryStructural,
		suggestion: "Indicate the required status of this field in its label text or with aria-required.",
	},
	{
		when: func(f fieldFacts) bool {
			fs := findAncestor(f.field, atom.Fieldset)
			return fs != nil && !hasDescendant(fs, atom.Legend)
		},
		category:   CategoryStructural,
		suggestion: "Add a legend to the enclosing fieldset to describe this group of fields.",
	},
	{
		when: func(f fieldFacts) bool {
			form := findAncestor(f.field, atom.Form)
			return form != nil && !hasInstructionText(form)
		},
		category:   CategoryFeatures,
		suggestion: "Add instructional text to the enclosing form so users know how to complete it.",
	},
	{
		when:       func(f fieldFacts) bool { return hasAttr(f.field, "aria-invalid") },
		category:   CategoryAlerts,
		suggestion: "Pair aria-invalid with an error message that assistive technologies announce.",
	},
}

// winningCategory folds the rule table left to right; the last rule whose
// predicate holds wins. Fields that trigger nothing land in elements.
func winningCategory(f fieldFacts) Category {
	cat := CategoryElements
	for _, r := range labelRules {
		if r.when(f) {
			cat = r.category
		}
	}
	return cat
}

// hasInstructionText reports whether the form contains paragraph-level
// instructional text: any p, div, or span descendant with non-empty text.
func hasInstructionText(form *html.Node) bool {
	for _, n := range findAllByTag(form, atom.P, atom.Div, atom.Span) {
		if collectText(n) != "" {
			return true
		}
	}
	return false
}

// labelPass evaluates every control-like element against the label rule
// table. Each field yields exactly one issue, in the category the table
// decides; HasLabel records whether any accessible name was found,
// independent of the category.
func labelPass(doc *html.Node) *Report {
	rep := NewReport()

	for _, field := range findAllByTag(doc, atom.Input, atom.Textarea, atom.Select) {
		facts := gatherFieldFacts(doc, field)

		var suggestions []string
		for _, r := range labelRules {
			if r.when(facts) {
				suggestions = append(suggestions, r.suggestion)
			}
		}

		has := facts.labeled || facts.ariaLabel
		rep.add(winningCategory(facts), Issue{
			Element:     renderNode(field),
			Suggestions: suggestions,
			Snippet:     snippetFor(field),
			Context:     facts.parentText,
			HasLabel:    &has,
		})
	}

	return rep
}

func gatherFieldFacts(doc, field *html.Node) fieldFacts {
	labeled := false
	if id, ok := attr(field, "id"); ok && id != "" {
		labeled = findLabelFor(doc, id) != nil
	}
	if !labeled {
		labeled = findAncestor(field, atom.Label) != nil
	}

	parentText := ""
	if p := parentElement(field); p != nil {
		parentText = collectText(p)
	}

	return fieldFacts{
		field:      field,
		labeled:    labeled,
		ariaLabel:  hasAttr(field, "aria-label"),
		parentText: parentText,
	}
}
