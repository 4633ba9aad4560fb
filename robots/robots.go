// Package robots parses robots.txt directives and answers allow/deny for a
// user-agent and path.
//
// The evaluator is deliberately minimal: a single pass over the lines with
// two states (tracking the current block when its User-agent matches,
// ignoring it otherwise). Allow directives, crawl-delay, and wildcards inside
// Disallow paths are not interpreted; a Disallow path denies when it is a
// plain string prefix of the request path.
package robots

import "strings"

// rule pairs a user-agent pattern with one disallowed path prefix.
type rule struct {
	agent string // lowercased User-agent value, "*" for the catch-all block
	path  string // Disallow value, verbatim
}

// Policy is the parsed form of one robots.txt body. It is rebuilt per fetch
// and never cached across requests.
type Policy struct {
	rules []rule
}

// Parse reads a robots.txt body into a Policy. Each Disallow line is bound
// to the most recent User-agent line above it; Disallow lines before any
// User-agent line are dropped.
func Parse(body string) *Policy {
	p := &Policy{}
	agent := ""
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "user-agent:"):
			agent = strings.TrimSpace(lower[len("user-agent:"):])
		case strings.HasPrefix(lower, "disallow:"):
			if agent == "" {
				continue
			}
			p.rules = append(p.rules, rule{
				agent: agent,
				path:  strings.TrimSpace(line[len("disallow:"):]),
			})
		}
	}
	return p
}

// Allowed reports whether the given user-agent may fetch the given URL path.
// A rule denies when its block matches the agent (exactly "*", or a block
// agent that begins with the active agent, case-insensitively) and its
// Disallow value is a string prefix of the path. An empty Disallow value is
// a prefix of every path and therefore denies everything for that block.
func (p *Policy) Allowed(userAgent, path string) bool {
	ua := strings.ToLower(userAgent)
	for _, r := range p.rules {
		if r.agent != "*" && !strings.HasPrefix(r.agent, ua) {
			continue
		}
		if strings.HasPrefix(path, r.path) {
			return false
		}
	}
	return true
}
