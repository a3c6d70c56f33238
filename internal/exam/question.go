package exam

import (
	"fmt"
	"strings"

	"examgen/internal/source"
)

// Format distinguishes open-response questions from multiple choice.
type Format string

const (
	FormatOpen   Format = "open"
	FormatChoice Format = "choice"
)

// correctMarker prefixes a source answer that should be graded as correct.
const correctMarker = "+"

// Question is one fully built exam question. IDs follow source order and
// never change, so a key can reference a question regardless of where
// shuffling placed it.
type Question struct {
	ID       int
	Question string
	Notes    string
	Answers  []string
	Correct  []int
	Format   Format
}

// buildQuestion turns one parsed block into a validated Question.
// position is the 1-based position of the block in the source file and
// becomes the question's ID.
func (a *Assembler) buildQuestion(block source.Document, meta Metadata, position int) (Question, error) {
	raw, ok := block["question"]
	if !ok || coerceText(raw) == "" {
		return Question{}, &EmptyQuestionError{Position: position}
	}
	text, err := a.markup.Render(coerceText(raw))
	if err != nil {
		return Question{}, fmt.Errorf("question %d: %w", position, err)
	}
	notes := ""
	if rawNotes, ok := block["notes"]; ok {
		notes, err = a.markup.Render(coerceText(rawNotes))
		if err != nil {
			return Question{}, fmt.Errorf("question %d notes: %w", position, err)
		}
	}

	entries, err := answerEntries(block["answers"])
	if err != nil {
		return Question{}, fmt.Errorf("question %d: %w", position, err)
	}
	if len(entries) == 0 {
		return Question{ID: position, Question: text, Notes: notes, Format: FormatOpen}, nil
	}

	answers := make([]string, len(entries))
	for i, entry := range entries {
		answers[i] = coerceText(entry)
	}
	if meta.ShuffleAnswers() {
		a.shuffler.shuffle(len(answers), func(i, j int) {
			answers[i], answers[j] = answers[j], answers[i]
		})
	}
	var correct []int
	for i, answer := range answers {
		if strings.HasPrefix(answer, correctMarker) {
			correct = append(correct, i)
		}
		answers[i] = stripMarker(answer)
	}
	if len(correct) == 0 && meta.RequireCorrect() {
		return Question{}, &MissingCorrectError{Question: text}
	}
	return Question{
		ID:       position,
		Question: text,
		Notes:    notes,
		Answers:  answers,
		Correct:  correct,
		Format:   FormatChoice,
	}, nil
}

// answerEntries reads the answers key as an ordered sequence. A missing
// or null key means an open question; anything other than a sequence is
// invalid.
func answerEntries(value any) ([]any, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return typed, nil
	default:
		return nil, fmt.Errorf("answers must be a sequence, got %T", value)
	}
}

// stripMarker removes one leading correct marker and at most one space
// after it. A marker anywhere else in the text is content and stays.
func stripMarker(answer string) string {
	if !strings.HasPrefix(answer, correctMarker) {
		return answer
	}
	return strings.TrimPrefix(answer[len(correctMarker):], " ")
}
