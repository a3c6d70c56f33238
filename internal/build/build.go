package build

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"examgen/internal/exam"
	"examgen/internal/pdf"
	"examgen/internal/render"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Dependencies injects the build's collaborators. Nil fields fall back to
// production defaults.
type Dependencies struct {
	Assembler *exam.Assembler
	Converter pdf.Converter
	BuildID   func() string
	Now       func() time.Time
}

// Options configures one build.
type Options struct {
	SourcePath string
	OutputDir  string // default: the source file's directory
	Format     string // FormatHTML (default) or FormatPDF
	Deps       Dependencies
}

// Artifacts reports what a build wrote.
type Artifacts struct {
	ExamPath string
	KeyPath  string
	BuildID  string
}

// Run executes one build: read the source, assemble the model, render the
// exam and key documents, and write both artifacts. Nothing is written
// until both documents have rendered (and converted) successfully, so a
// failed build leaves no output behind.
func Run(opts Options) (Artifacts, error) {
	ext, err := formatExt(opts.Format)
	if err != nil {
		return Artifacts{}, err
	}

	data, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return Artifacts{}, fmt.Errorf("read source file: %w", err)
	}

	assembler := opts.Deps.Assembler
	if assembler == nil {
		assembler = exam.NewAssembler(exam.Options{})
	}
	model, err := assembler.Assemble(data)
	if err != nil {
		return Artifacts{}, err
	}

	renderer, err := render.New()
	if err != nil {
		return Artifacts{}, err
	}
	now := opts.Deps.Now
	if now == nil {
		now = time.Now
	}
	buildID := opts.Deps.BuildID
	if buildID == nil {
		buildID = newBuildID
	}
	stamp := render.Stamp{BuildID: buildID(), Date: now()}

	var examDoc, keyDoc bytes.Buffer
	if err := renderer.Exam(&examDoc, model, stamp); err != nil {
		return Artifacts{}, err
	}
	if err := renderer.Key(&keyDoc, model, stamp); err != nil {
		return Artifacts{}, err
	}

	if ext == FormatPDF {
		converter := opts.Deps.Converter
		if converter == nil {
			converter = pdf.WKHTMLToPDF{}
		}
		if examDoc, err = convert(converter, examDoc); err != nil {
			return Artifacts{}, fmt.Errorf("exam document: %w", err)
		}
		if keyDoc, err = convert(converter, keyDoc); err != nil {
			return Artifacts{}, fmt.Errorf("key document: %w", err)
		}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(opts.SourcePath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("create output dir: %w", err)
	}

	artifacts := Artifacts{
		ExamPath: filepath.Join(outputDir, DocumentName(opts.SourcePath, stamp.Date, RoleExam, ext)),
		KeyPath:  filepath.Join(outputDir, DocumentName(opts.SourcePath, stamp.Date, RoleKey, ext)),
		BuildID:  stamp.BuildID,
	}
	if err := os.WriteFile(artifacts.ExamPath, examDoc.Bytes(), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("write exam document: %w", err)
	}
	if err := os.WriteFile(artifacts.KeyPath, keyDoc.Bytes(), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("write key document: %w", err)
	}
	return artifacts, nil
}

func convert(converter pdf.Converter, doc bytes.Buffer) (bytes.Buffer, error) {
	var converted bytes.Buffer
	if err := converter.Convert(&converted, doc.String()); err != nil {
		return bytes.Buffer{}, err
	}
	return converted, nil
}

// formatExt validates the requested format and returns the artifact
// extension.
func formatExt(format string) (string, error) {
	switch format {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected html or pdf)", format)
	}
}

// newBuildID returns a short random identifier stamped into both
// documents of a build.
func newBuildID() string {
	return uuid.NewString()[:8]
}
