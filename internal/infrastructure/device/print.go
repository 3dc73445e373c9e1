package device

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// ExecPrintEngine renders HTML to PDF by invoking an external converter such
// as wkhtmltopdf, which reads an HTML file and writes a PDF.
type ExecPrintEngine struct {
	command string
	workDir string
}

func NewExecPrintEngine(command, workDir string) *ExecPrintEngine {
	return &ExecPrintEngine{command: command, workDir: workDir}
}

// PrintToFile writes html to a scratch file, runs the converter, and returns
// the path of the produced PDF. The intermediate HTML file is removed.
func (e *ExecPrintEngine) PrintToFile(ctx context.Context, html string) (string, error) {
	if e.command == "" {
		return "", fmt.Errorf("no print command configured")
	}

	name := uuid.NewString()
	htmlPath := filepath.Join(e.workDir, name+".html")
	pdfPath := filepath.Join(e.workDir, name+".pdf")

	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("writing print input: %w", err)
	}
	defer os.Remove(htmlPath)

	cmd := exec.CommandContext(ctx, e.command, htmlPath, pdfPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("print command %s failed: %w: %s", e.command, err, out)
	}

	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("print command produced no output: %w", err)
	}
	return pdfPath, nil
}
