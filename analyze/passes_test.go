package analyze

import (
	"strings"
	"testing"
)

func TestAlertsPass(t *testing.T) {
	doc := parseDoc(t, `<body><fieldset>
		<div role="alert">Something went wrong</div>
	</fieldset></body>`)
	rep := alertsPass(doc)

	if len(rep.Alerts) != 1 {
		t.Fatalf("alerts: got %d, want 1", len(rep.Alerts))
	}
	is := rep.Alerts[0]
	// role is present, tabindex is not: only the focus suggestion applies.
	if len(is.Suggestions) != 1 || !strings.Contains(is.Suggestions[0], "tabindex") {
		t.Errorf("suggestions: got %v", is.Suggestions)
	}
}

func TestAlertsPass_AriaLiveWithoutRole(t *testing.T) {
	doc := parseDoc(t, `<body><label>Status
		<span aria-live="polite" tabindex="0">saved</span>
	</label></body>`)
	rep := alertsPass(doc)

	if len(rep.Alerts) != 1 {
		t.Fatalf("alerts: got %d, want 1", len(rep.Alerts))
	}
	if got := rep.Alerts[0].Suggestions; len(got) != 1 || !strings.Contains(got[0], "role") {
		t.Errorf("suggestions: got %v", got)
	}
}

func TestAlertsPass_CompleteAlertNotFlagged(t *testing.T) {
	doc := parseDoc(t, `<body><fieldset>
		<div role="alert" tabindex="-1">fine</div>
	</fieldset></body>`)
	if rep := alertsPass(doc); len(rep.Alerts) != 0 {
		t.Errorf("focusable alert with a role should not be flagged, got %d", len(rep.Alerts))
	}
}

func TestAlertsPass_NestedContainersNoDuplicates(t *testing.T) {
	// The alert sits inside both a fieldset and a label; one record only.
	doc := parseDoc(t, `<body><fieldset><label>
		<div aria-live="assertive">err</div>
	</label></fieldset></body>`)
	if rep := alertsPass(doc); len(rep.Alerts) != 1 {
		t.Errorf("alerts: got %d, want 1", len(rep.Alerts))
	}
}

func TestFeaturesPass(t *testing.T) {
	doc := parseDoc(t, `<body>
		<form><input name="a"></form>
		<form><p>Instructions here.</p><fieldset><input></fieldset></form>
	</body>`)
	rep := featuresPass(doc)

	// First form lacks instructions; second form's fieldset lacks a legend.
	if len(rep.Features) != 2 {
		t.Fatalf("features: got %d, want 2", len(rep.Features))
	}
}

func TestFeaturesPass_FieldsetOutsideFormIgnored(t *testing.T) {
	doc := parseDoc(t, `<body><fieldset><input></fieldset></body>`)
	if rep := featuresPass(doc); len(rep.Features) != 0 {
		t.Errorf("fieldset outside a form should not be flagged here, got %d", len(rep.Features))
	}
}

func TestStructuralPass(t *testing.T) {
	doc := parseDoc(t, `<body><form>
		<label for="a">A</label><input id="a">
		<input id="b" aria-label="B">
	</form></body>`)
	rep := structuralPass(doc)

	// No fieldset in the form, and field b has no for-linked label —
	// aria-label does not satisfy this pass.
	if len(rep.Structural) != 2 {
		t.Fatalf("structural: got %d, want 2 (summary %+v)", len(rep.Structural), rep.Summary())
	}
}

func TestStructuralPass_LegendlessFieldset(t *testing.T) {
	doc := parseDoc(t, `<body>
		<fieldset><legend>Good</legend></fieldset>
		<fieldset></fieldset>
	</body>`)
	rep := structuralPass(doc)
	if len(rep.Structural) != 1 {
		t.Fatalf("structural: got %d, want 1", len(rep.Structural))
	}
}

func TestElementsPass_EmptyButton(t *testing.T) {
	doc := parseDoc(t, `<body><button></button></body>`)
	rep := elementsPass(doc)
	if len(rep.Elements) != 1 {
		t.Fatalf("elements: got %d, want 1", len(rep.Elements))
	}
}

func TestElementsPass_AriaLabeledButtonNotFlagged(t *testing.T) {
	doc := parseDoc(t, `<body><button aria-label="Close"></button></body>`)
	if rep := elementsPass(doc); len(rep.Elements) != 0 {
		t.Errorf("aria-labeled button flagged: %d", len(rep.Elements))
	}
}

func TestElementsPass_HashAnchor(t *testing.T) {
	doc := parseDoc(t, `<body>
		<a href="#">Click</a>
		<a href="/real">Real</a>
		<a href="#section">Fragment</a>
	</body>`)
	rep := elementsPass(doc)
	if len(rep.Elements) != 1 {
		t.Fatalf("elements: got %d, want exactly 1 for the bare # anchor", len(rep.Elements))
	}
	if !strings.Contains(rep.Elements[0].Element, `href="#"`) {
		t.Errorf("record should describe the href=\"#\" anchor, got %q", rep.Elements[0].Element)
	}
}

func TestAriaPass_RoleWithAriaAttributes(t *testing.T) {
	doc := parseDoc(t, `<body><span role="checkbox" aria-checked="false">x</span></body>`)
	rep := ariaPass(doc)
	if len(rep.Aria) != 1 {
		t.Fatalf("aria: got %d, want 1", len(rep.Aria))
	}
}

func TestAriaPass_DivAsButton(t *testing.T) {
	doc := parseDoc(t, `<body><div role="button" aria-pressed="false">Go</div></body>`)
	rep := ariaPass(doc)
	if len(rep.Aria) != 1 {
		t.Fatalf("aria: got %d, want 1", len(rep.Aria))
	}
	joined := strings.Join(rep.Aria[0].Suggestions, " ")
	if !strings.Contains(joined, "native button") {
		t.Errorf("expected native-element suggestion, got %v", rep.Aria[0].Suggestions)
	}
}

func TestAriaPass_RoleAloneNotFlagged(t *testing.T) {
	doc := parseDoc(t, `<body><span role="note">x</span></body>`)
	if rep := ariaPass(doc); len(rep.Aria) != 0 {
		t.Errorf("role without aria-* should not be flagged, got %d", len(rep.Aria))
	}
}
