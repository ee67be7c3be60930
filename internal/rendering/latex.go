package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jmorales/jobhunter/internal/types"
)

//go:embed resume.tex.tmpl
var resumeTemplate string

// RenderLaTeX serializes a tailored resume into LaTeX source. All user-facing
// text goes through EscapeLaTeX inside the template, so reserved characters in
// profile content can never break the document.
func RenderLaTeX(resume *types.TailoredResume) (string, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape":     EscapeLaTeX,
		"escapeURL":  EscapeURL,
		"formatDate": FormatDate,
		"joinSkills": joinSkills,
	}).Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse resume template",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, resume); err != nil {
		return "", &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// joinSkills renders the skills line, escaping each entry individually.
func joinSkills(skills []string) string {
	escaped := make([]string, len(skills))
	for i, s := range skills {
		escaped[i] = EscapeLaTeX(s)
	}
	return strings.Join(escaped, " $\\cdot$ ")
}
