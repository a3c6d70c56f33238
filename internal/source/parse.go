package source

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one parsed segment of an exam source file: a generic
// key-value mapping.
type Document map[string]any

// Source holds the split and parsed contents of an exam source file. The
// preamble is everything before the first delimiter line; each delimiter
// after that closes one question block.
type Source struct {
	Preamble Document
	Blocks   []Document
}

// ParseError reports a segment that failed to parse. Block 0 identifies
// the preamble; block n >= 1 the n-th question block.
type ParseError struct {
	Block int
	Err   error
}

// Error returns a readable message locating the malformed segment.
func (err *ParseError) Error() string {
	if err.Block == 0 {
		return fmt.Sprintf("parse preamble: %v", err.Err)
	}
	return fmt.Sprintf("parse question block %d: %v", err.Block, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Parse splits raw source text into preamble and question-block segments
// and parses each segment independently. The first malformed segment
// fails the whole parse.
func Parse(data []byte) (Source, error) {
	segments := split(string(data))
	preamble, err := parseSegment(segments[0])
	if err != nil {
		return Source{}, &ParseError{Block: 0, Err: err}
	}
	blocks := make([]Document, 0, len(segments)-1)
	for i, segment := range segments[1:] {
		block, err := parseSegment(segment)
		if err != nil {
			return Source{}, &ParseError{Block: i + 1, Err: err}
		}
		blocks = append(blocks, block)
	}
	return Source{Preamble: preamble, Blocks: blocks}, nil
}

// split cuts source text on delimiter lines. The result always has at
// least one segment: the preamble, which may be empty.
func split(text string) []string {
	segments := []string{}
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if isDelimiter(line) {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
			continue
		}
		current = append(current, line)
	}
	return append(segments, strings.Join(current, "\n"))
}

// isDelimiter reports whether a line separates segments. Trailing spaces,
// tabs, and a carriage return do not disqualify it.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == "---"
}

// parseSegment decodes one segment as a single YAML mapping. Empty and
// null segments yield an empty mapping; a scalar or sequence document is
// malformed.
func parseSegment(segment string) (Document, error) {
	decoder := yaml.NewDecoder(strings.NewReader(segment))
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return Document{}, nil
		}
		return nil, err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("multiple documents in one segment")
		}
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
