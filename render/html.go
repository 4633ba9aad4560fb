package render

import (
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"a11yscan/analyze"
)

// context strings come from arbitrary remote documents; strip any markup
// that survived text flattening before embedding them in the report page.
var textPolicy = bluemonday.StrictPolicy()

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Accessibility report {{.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: .3rem; }
pre { background: #f6f6f6; padding: .5rem; overflow-x: auto; }
.count { color: #666; font-weight: normal; }
</style>
</head>
<body>
<h1>Accessibility report <small class="count">{{.ID}}</small></h1>
{{range .Sections}}
<h2>{{.Name}} <span class="count">({{len .Issues}})</span></h2>
{{range .Issues}}
<pre>{{.Snippet}}</pre>
<ul>
{{range .Suggestions}}<li>{{.}}</li>
{{end}}</ul>
{{if .Context}}<p>Context: {{.Context}}</p>{{end}}
{{end}}
{{end}}
<p>{{.Total}} issues in total.</p>
</body>
</html>
`))

type htmlSection struct {
	Name   string
	Issues []analyze.Issue
}

type htmlReport struct {
	ID       string
	Sections []htmlSection
	Total    int
}

// HTML writes a standalone report page to w. Snippets are escaped by the
// template; context strings are additionally sanitized.
func HTML(w io.Writer, res *analyze.Result) error {
	page := htmlReport{ID: res.ID, Total: res.Summary.Total()}
	for _, cat := range analyze.Categories() {
		issues := res.Report.Category(cat)
		if len(issues) == 0 {
			continue
		}
		cleaned := make([]analyze.Issue, len(issues))
		for i, is := range issues {
			is.Context = textPolicy.Sanitize(is.Context)
			cleaned[i] = is
		}
		page.Sections = append(page.Sections, htmlSection{Name: string(cat), Issues: cleaned})
	}
	return reportTmpl.Execute(w, page)
}
