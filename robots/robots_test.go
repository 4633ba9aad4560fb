package robots

import "testing"

const agent = "AccessibilityAnalysisTool"

func TestWildcardDisallow(t *testing.T) {
	p := Parse("User-agent: *\nDisallow: /private")

	if p.Allowed(agent, "/private/page") {
		t.Error("/private/page should be denied")
	}
	if !p.Allowed(agent, "/public/page") {
		t.Error("/public/page should be allowed")
	}
}

func TestNamedAgentBlock(t *testing.T) {
	body := "User-agent: accessibilityanalysistool\nDisallow: /tools\n\nUser-agent: otherbot\nDisallow: /"

	p := Parse(body)
	if p.Allowed(agent, "/tools/audit") {
		t.Error("named block should deny /tools/audit")
	}
	// otherbot's blanket Disallow must not apply to us.
	if !p.Allowed(agent, "/home") {
		t.Error("/home should be allowed; block for another agent leaked")
	}
}

func TestCaseInsensitiveDirectives(t *testing.T) {
	p := Parse("USER-AGENT: *\nDISALLOW: /admin")
	if p.Allowed(agent, "/admin") {
		t.Error("uppercase directives should still deny /admin")
	}
}

func TestAgentSwitchExitsBlock(t *testing.T) {
	// A Disallow after a non-matching User-agent line belongs to that
	// block, not to the earlier wildcard block.
	body := "User-agent: *\nDisallow: /a\nUser-agent: otherbot\nDisallow: /b"

	p := Parse(body)
	if p.Allowed(agent, "/a") {
		t.Error("/a should be denied by the wildcard block")
	}
	if !p.Allowed(agent, "/b") {
		t.Error("/b belongs to otherbot's block and should be allowed")
	}
}

func TestEmptyDisallowDeniesAll(t *testing.T) {
	// An empty Disallow value is a prefix of every path, so the whole
	// block denies.
	p := Parse("User-agent: *\nDisallow:")
	if p.Allowed(agent, "/anything") {
		t.Error("empty Disallow should deny every path")
	}
}

func TestDisallowBeforeAnyAgent(t *testing.T) {
	p := Parse("Disallow: /loose\nUser-agent: *\nDisallow: /private")
	if !p.Allowed(agent, "/loose") {
		t.Error("Disallow before any User-agent line should be ignored")
	}
	if p.Allowed(agent, "/private") {
		t.Error("/private should still be denied")
	}
}

func TestEmptyPolicy(t *testing.T) {
	p := Parse("")
	if !p.Allowed(agent, "/anything") {
		t.Error("empty policy should allow everything")
	}
}
