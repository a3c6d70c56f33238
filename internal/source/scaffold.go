package source

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultSource = `# Exam source file. Everything above the first "---" line is the preamble;
# each "---" after that starts one question block.
title: Sample Exam
course: Introduction to Examples
date: 2025-06-01

# Recognized options and their defaults. Any other preamble key is passed
# through to the rendered documents untouched.
shuffle-questions: false
shuffle-answers: true
require-correct: true
---
# Answers beginning with "+" are correct. The marker is stripped before
# rendering and never appears in the exam or the key.
question: What is *2 + 2*?
answers:
  - "3"
  - "+4"
  - "5"
---
question: Which of these are prime?
notes: More than one answer may be correct.
answers:
  - "+2"
  - "4"
  - "+5"
  - "9"
---
# A block without answers is an open-response question.
question: Explain recursion in your own words.
`

// Scaffold writes a commented example exam source file. It refuses to
// overwrite an existing file.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("source path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("source path %q is a directory", path)
		}
		return fmt.Errorf("source file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat source file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create source dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultSource), 0o644); err != nil {
		return fmt.Errorf("write source file: %w", err)
	}
	return nil
}
