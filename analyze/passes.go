package analyze

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Each pass is a pure function of the document tree: it never mutates the
// tree, never reads another pass's output, and appends only to its own
// buckets. The orchestrator may therefore run passes concurrently with one
// accumulator each.

// alertsPass finds live-region descendants of form-related elements and
// flags ones that cannot receive focus or lack an explicit role.
func alertsPass(doc *html.Node) *Report {
	rep := NewReport()
	seen := map[*html.Node]bool{}

	containers := findAllByTag(doc, atom.Input, atom.Textarea, atom.Select, atom.Fieldset, atom.Label)
	for _, container := range containers {
		walkElements(container, func(n *html.Node) {
			if n == container || seen[n] || !isLiveRegion(n) {
				return
			}
			seen[n] = true

			var suggestions []string
			if !hasAttr(n, "tabindex") {
				suggestions = append(suggestions, "Add a tabindex so the alert can be reached with the keyboard.")
			}
			if !hasAttr(n, "role") {
				suggestions = append(suggestions, `Add an explicit role (such as role="alert") so the message is announced.`)
			}
			if len(suggestions) == 0 {
				return
			}
			rep.add(CategoryAlerts, Issue{
				Element:     renderNode(n),
				Suggestions: suggestions,
				Snippet:     snippetFor(n),
				Context:     collectText(n),
			})
		})
	}
	return rep
}

// isLiveRegion reports whether n announces dynamically: role="alert" or an
// assertive/polite aria-live setting.
func isLiveRegion(n *html.Node) bool {
	if v, ok := attr(n, "role"); ok && strings.EqualFold(v, "alert") {
		return true
	}
	if v, ok := attr(n, "aria-live"); ok {
		switch strings.ToLower(v) {
		case "assertive", "polite":
			return true
		}
	}
	return false
}

// featuresPass flags forms without instructional text and fieldsets inside
// forms without a legend.
func featuresPass(doc *html.Node) *Report {
	rep := NewReport()

	for _, form := range findAllByTag(doc, atom.Form) {
		if !hasInstructionText(form) {
			rep.add(CategoryFeatures, Issue{
				Element:     renderNode(form),
				Suggestions: []string{"Add instructional text (a paragraph or similar) describing how to complete this form."},
				Snippet:     prettyNode(form),
				Context:     collectText(form),
			})
		}
	}

	for _, fs := range findAllByTag(doc, atom.Fieldset) {
		if findAncestor(fs, atom.Form) == nil {
			continue
		}
		if !hasDescendant(fs, atom.Legend) {
			rep.add(CategoryFeatures, Issue{
				Element:     renderNode(fs),
				Suggestions: []string{"Add a legend to this fieldset so the group of fields is announced with a name."},
				Snippet:     snippetFor(fs),
				Context:     collectText(fs),
			})
		}
	}
	return rep
}

// structuralPass flags forms without fieldsets, fieldsets without legends,
// and fields inside forms with no id-linked label in that form's scope.
// Stricter than the label pass: an aria-label does not satisfy it.
func structuralPass(doc *html.Node) *Report {
	rep := NewReport()

	for _, form := range findAllByTag(doc, atom.Form) {
		if !hasDescendant(form, atom.Fieldset) {
			rep.add(CategoryStructural, Issue{
				Element:     renderNode(form),
				Suggestions: []string{"Group related fields with a fieldset."},
				Snippet:     prettyNode(form),
				Context:     collectText(form),
			})
		}

		for _, field := range findAllByTag(form, atom.Input, atom.Textarea, atom.Select) {
			id, _ := attr(field, "id")
			if id != "" && findLabelFor(form, id) != nil {
				continue
			}
			rep.add(CategoryStructural, Issue{
				Element:     renderNode(field),
				Suggestions: []string{"Link a label to this field with a for attribute matching its id."},
				Snippet:     snippetFor(field),
				Context:     collectText(form),
			})
		}
	}

	for _, fs := range findAllByTag(doc, atom.Fieldset) {
		if !hasDescendant(fs, atom.Legend) {
			rep.add(CategoryStructural, Issue{
				Element:     renderNode(fs),
				Suggestions: []string{"Add a legend as the first child of this fieldset."},
				Snippet:     snippetFor(fs),
				Context:     collectText(fs),
			})
		}
	}
	return rep
}

// elementsPass flags buttons with no accessible name and anchors that go
// nowhere.
func elementsPass(doc *html.Node) *Report {
	rep := NewReport()

	for _, btn := range findAllByTag(doc, atom.Button) {
		if collectText(btn) == "" && !hasAttr(btn, "aria-label") {
			rep.add(CategoryElements, Issue{
				Element:     renderNode(btn),
				Suggestions: []string{"Give this button visible text or an aria-label so its purpose is announced."},
				Snippet:     snippetFor(btn),
				Context:     collectText(btn),
			})
		}
	}

	for _, a := range findAllByTag(doc, atom.A) {
		if href, ok := attr(a, "href"); ok && href == "#" {
			rep.add(CategoryElements, Issue{
				Element:     renderNode(a),
				Suggestions: []string{`Replace href="#" with a real destination, or use a button element for an action.`},
				Snippet:     snippetFor(a),
				Context:     collectText(a),
			})
		}
	}
	return rep
}

// ariaPass reviews explicit ARIA usage: elements carrying both a role and
// aria-* attributes, and divs pretending to be interactive elements.
func ariaPass(doc *html.Node) *Report {
	rep := NewReport()

	walkElements(doc, func(n *html.Node) {
		role, hasRole := attr(n, "role")

		var suggestions []string
		if hasRole && hasAriaAttr(n) {
			suggestions = append(suggestions, "Verify that the aria-* attributes on this element are valid for its declared role.")
		}
		if n.DataAtom == atom.Div && hasRole {
			switch strings.ToLower(role) {
			case "button":
				suggestions = append(suggestions, `Use a native button element instead of a div with role="button".`)
			case "link":
				suggestions = append(suggestions, `Use a native a element instead of a div with role="link".`)
			}
		}
		if len(suggestions) == 0 {
			return
		}
		rep.add(CategoryAria, Issue{
			Element:     renderNode(n),
			Suggestions: suggestions,
			Snippet:     snippetFor(n),
			Context:     collectText(n),
		})
	})
	return rep
}
