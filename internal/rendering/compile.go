package rendering

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultCompileTimeout bounds a single pdflatex invocation.
	DefaultCompileTimeout = 60 * time.Second

	texFileName = "resume.tex"
	pdfFileName = "resume.pdf"
)

// Compiler runs pdflatex on serialized LaTeX source. The zero value is not
// usable; construct with NewCompiler.
type Compiler struct {
	pdflatexPath string
	timeout      time.Duration
}

// NewCompiler builds a compiler. Empty pdflatexPath means look up "pdflatex"
// on PATH; a zero timeout means DefaultCompileTimeout.
func NewCompiler(pdflatexPath string, timeout time.Duration) *Compiler {
	if pdflatexPath == "" {
		pdflatexPath = "pdflatex"
	}
	if timeout <= 0 {
		timeout = DefaultCompileTimeout
	}
	return &Compiler{pdflatexPath: pdflatexPath, timeout: timeout}
}

// Available reports whether the pdflatex binary can be found.
func (c *Compiler) Available() bool {
	_, err := exec.LookPath(c.pdflatexPath)
	return err == nil
}

// Compile turns LaTeX source into PDF bytes. All intermediate files live in a
// temporary directory that is removed on every exit path, so a failed run
// leaves nothing behind. pdflatex runs twice because references and spacing
// settle on the second pass.
func (c *Compiler) Compile(ctx context.Context, texSource string) ([]byte, error) {
	if _, err := exec.LookPath(c.pdflatexPath); err != nil {
		return nil, &CompileError{
			Message: "pdflatex not found in PATH, install a LaTeX distribution (e.g. TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "resume-compile-*")
	if err != nil {
		return nil, &CompileError{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(texSource), 0644); err != nil {
		return nil, &CompileError{
			Message: "failed to write LaTeX source",
			Cause:   err,
		}
	}

	// Nonzero exits with a produced PDF are common (overfull boxes and
	// similar warnings), so apart from cancellation the final file check
	// decides success.
	var logOutput string
	for pass := 0; pass < 2; pass++ {
		out, runErr := c.runPdflatex(ctx, workDir, texPath)
		logOutput = out
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			return nil, &CompileError{
				Message:   "pdflatex run canceled or timed out",
				LogOutput: logOutput,
				Cause:     runErr,
			}
		}
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, pdfFileName))
	if err != nil {
		return nil, &CompileError{
			Message:   "pdflatex did not produce a PDF",
			LogOutput: logOutput,
			Cause:     err,
		}
	}

	return pdf, nil
}

func (c *Compiler) runPdflatex(ctx context.Context, workDir, texPath string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.pdflatexPath,
		"-interaction=nonstopmode",
		"-output-directory", workDir,
		texPath,
	)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if ctxErr := runCtx.Err(); ctxErr != nil {
		return output.String(), ctxErr
	}
	return output.String(), err
}
