package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"examgen/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a scratch directory$`, state.aScratchDirectory)
	ctx.Step(`^an exam source file "([^"]+)":$`, state.anExamSourceFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the working directory contains the (exam|key) document$`, state.theWorkingDirectoryContainsDocument)
	ctx.Step(`^the (exam|key) document contains "([^"]*)"$`, state.theDocumentContains)
	ctx.Step(`^the (exam|key) document does not contain "([^"]*)"$`, state.theDocumentDoesNotContain)
	ctx.Step(`^no documents are written$`, state.noDocumentsAreWritten)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

// aScratchDirectory creates an empty working directory and moves into it.
func (s *featureState) aScratchDirectory() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "examgen-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// anExamSourceFile writes the doc string to the named file in the scratch
// directory.
func (s *featureState) anExamSourceFile(name string, doc *godog.DocString) error {
	if err := s.aScratchDirectory(); err != nil {
		return err
	}
	path := filepath.Join(s.workDir, name)
	if err := os.WriteFile(path, []byte(doc.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write source file: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "examgen" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theWorkingDirectoryContainsDocument(role string) error {
	_, err := s.documentPath(role)
	return err
}

func (s *featureState) theDocumentContains(role, text string) error {
	contents, err := s.documentContents(role)
	if err != nil {
		return err
	}
	if !strings.Contains(contents, text) {
		return fmt.Errorf("expected %q in %s document", text, role)
	}
	return nil
}

func (s *featureState) theDocumentDoesNotContain(role, text string) error {
	contents, err := s.documentContents(role)
	if err != nil {
		return err
	}
	if strings.Contains(contents, text) {
		return fmt.Errorf("did not expect %q in %s document", text, role)
	}
	return nil
}

func (s *featureState) noDocumentsAreWritten() error {
	for _, role := range []string{"exam", "key"} {
		matches, err := s.documentGlob(role)
		if err != nil {
			return err
		}
		if len(matches) != 0 {
			return fmt.Errorf("expected no %s documents, found %v", role, matches)
		}
	}
	return nil
}

// documentPath resolves the single document written for a role.
func (s *featureState) documentPath(role string) (string, error) {
	matches, err := s.documentGlob(role)
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("expected one %s document, found %v", role, matches)
	}
	return matches[0], nil
}

func (s *featureState) documentGlob(role string) ([]string, error) {
	if s.workDir == "" {
		return nil, fmt.Errorf("no scratch directory")
	}
	matches, err := filepath.Glob(filepath.Join(s.workDir, "*_"+role+".*"))
	if err != nil {
		return nil, fmt.Errorf("glob %s documents: %w", role, err)
	}
	return matches, nil
}

func (s *featureState) documentContents(role string) (string, error) {
	path, err := s.documentPath(role)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s document: %w", role, err)
	}
	return string(data), nil
}
