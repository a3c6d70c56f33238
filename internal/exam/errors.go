package exam

import "fmt"

// EmptyQuestionError reports a block whose question text is missing or
// empty. Position is 1-based and counts question blocks in source order.
type EmptyQuestionError struct {
	Position int
}

func (err *EmptyQuestionError) Error() string {
	return fmt.Sprintf("question %d is empty", err.Position)
}

// MissingCorrectError reports a choice question with answers but no marked
// correct one while require-correct is on. Question carries the rendered
// question text.
type MissingCorrectError struct {
	Question string
}

func (err *MissingCorrectError) Error() string {
	return fmt.Sprintf("no correct answer marked for question: %s", err.Question)
}
