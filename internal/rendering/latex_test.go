package rendering

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorales/jobhunter/internal/types"
)

func testResume() *types.TailoredResume {
	return &types.TailoredResume{
		Name:     "Jordan Vale",
		Email:    "jordan@example.com",
		Phone:    "555-0100",
		Location: "Portland, OR",
		Summary:  "Engineer with 100% commitment & a focus on results",
		Skills:   []string{"Go", "C#", "PostgreSQL"},
		Experiences: []types.ResumeSection{
			{
				Company:   "Smith & Sons",
				Title:     "Senior Engineer",
				Location:  "Remote",
				StartDate: "2021-03",
				EndDate:   "present",
				Statements: []string{
					"Cut costs by 40% ($2M annually)",
					"Owned the user_service migration",
				},
			},
			{
				Company:    "Initech",
				Title:      "Engineer",
				StartDate:  "2017-01",
				EndDate:    "2021-02",
				Statements: []string{"Built internal reporting dashboard"},
			},
		},
		Target: types.TargetPostingInfo{PostingID: "posting-1", Title: "Staff Engineer", Company: "Globex"},
	}
}

func TestRenderLaTeX_ContainsContent(t *testing.T) {
	out, err := RenderLaTeX(testResume())
	require.NoError(t, err)

	assert.Contains(t, out, `\documentclass`)
	assert.Contains(t, out, "Jordan Vale")
	assert.Contains(t, out, "jordan@example.com")
	assert.Contains(t, out, "Senior Engineer")
	assert.Contains(t, out, "Initech")
	assert.Contains(t, out, `\end{document}`)
}

func TestRenderLaTeX_EscapesReservedCharacters(t *testing.T) {
	out, err := RenderLaTeX(testResume())
	require.NoError(t, err)

	assert.Contains(t, out, `Smith \& Sons`)
	assert.Contains(t, out, `40\% (\$2M annually)`)
	assert.Contains(t, out, `user\_service`)
	assert.Contains(t, out, `C\#`)
	assert.NotContains(t, out, "Smith & Sons")
	assert.NotContains(t, out, "user_service")
}

func TestRenderLaTeX_EscapesContactFields(t *testing.T) {
	resume := testResume()
	resume.LinkedIn = `linkedin.com/in/x}\input{evil}`
	resume.Phone = "555-0100 #2"

	out, err := RenderLaTeX(resume)
	require.NoError(t, err)

	assert.Contains(t, out, `\href{https://linkedin.com/in/x%7D%5Cinput%7Bevil%7D}`)
	assert.Contains(t, out, `555-0100 \#2`)
	assert.NotContains(t, out, `\input{evil}`)
}

func TestRenderLaTeX_FormatsDates(t *testing.T) {
	out, err := RenderLaTeX(testResume())
	require.NoError(t, err)

	assert.Contains(t, out, "Mar 2021 -- Present")
	assert.Contains(t, out, "Jan 2017 -- Feb 2021")
}

func TestRenderLaTeX_PreservesExperienceOrder(t *testing.T) {
	out, err := RenderLaTeX(testResume())
	require.NoError(t, err)

	first := strings.Index(out, "Smith")
	second := strings.Index(out, "Initech")
	require.Positive(t, first)
	require.Positive(t, second)
	assert.Less(t, first, second)
}

func TestRenderLaTeX_Deterministic(t *testing.T) {
	a, err := RenderLaTeX(testResume())
	require.NoError(t, err)
	b, err := RenderLaTeX(testResume())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompile_SkipsWithoutPdflatex(t *testing.T) {
	compiler := NewCompiler("", 0)
	if !compiler.Available() {
		t.Skip("pdflatex not installed, skipping compilation test")
	}

	tex, err := RenderLaTeX(testResume())
	require.NoError(t, err)

	pdf, err := compiler.Compile(context.Background(), tex)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"), "output should be a PDF document")
}

func TestCompile_MissingBinary(t *testing.T) {
	compiler := NewCompiler("pdflatex-definitely-not-installed", time.Second)

	_, err := compiler.Compile(context.Background(), `\documentclass{article}\begin{document}x\end{document}`)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Message, "not found")
}

func TestCompile_BrokenSourceFails(t *testing.T) {
	compiler := NewCompiler("", 0)
	if !compiler.Available() {
		t.Skip("pdflatex not installed, skipping compilation test")
	}

	_, err := compiler.Compile(context.Background(), `\documentclass{article}\begin{document}\undefinedmacro`)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.NotEmpty(t, compileErr.LogOutput)
}
