package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestValidateCommandOK verifies a valid source reports its question
// count.
func TestValidateCommandOK(t *testing.T) {
	path := writeFixture(t, buildFixture)
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Source OK: 1 questions") {
		t.Fatalf("expected question count, got %q", out.String())
	}
}

// TestValidateCommandMissingCorrect verifies validation points at the
// offending question.
func TestValidateCommandMissingCorrect(t *testing.T) {
	path := writeFixture(t, "---\nquestion: \"2+2?\"\nanswers: [\"3\", \"4\"]\n")
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Validation failed:") {
		t.Fatalf("expected validation diagnostic, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "no correct answer marked") {
		t.Fatalf("expected missing correct diagnostic, got %q", errOut.String())
	}
}

// TestValidateCommandMissingFile verifies unreadable sources fail.
func TestValidateCommandMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "absent.yml"}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Validation failed:") {
		t.Fatalf("expected validation diagnostic, got %q", errOut.String())
	}
}

// TestValidateCommandUsage verifies the source argument is required.
func TestValidateCommandUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Fatalf("expected usage in stderr, got %q", errOut.String())
	}
}
