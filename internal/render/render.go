package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"examgen/internal/exam"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Stamp identifies one build so a printed key can be matched to its exam
// regardless of shuffling.
type Stamp struct {
	BuildID string
	Date    time.Time
}

// Renderer turns an exam model into the exam and key HTML documents.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse document templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Exam writes the student-facing exam document.
func (r *Renderer) Exam(w io.Writer, model exam.Model, stamp Stamp) error {
	return r.render(w, "exam.html.tmpl", model, stamp)
}

// Key writes the instructor-facing answer key document.
func (r *Renderer) Key(w io.Writer, model exam.Model, stamp Stamp) error {
	return r.render(w, "key.html.tmpl", model, stamp)
}

func (r *Renderer) render(w io.Writer, name string, model exam.Model, stamp Stamp) error {
	if err := r.templates.ExecuteTemplate(w, name, documentView(model, stamp)); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// view is the template input: metadata fields the documents show, plus
// per-question views with precomputed letters and correctness.
type view struct {
	Title     string
	Course    string
	Date      string
	Questions []questionView
	BuildID   string
	BuiltOn   string
}

type questionView struct {
	Text    template.HTML
	Notes   template.HTML
	Open    bool
	Answers []answerView
}

type answerView struct {
	Letter  string
	Text    string
	Correct bool
}

// documentView flattens a model for the templates. Question and notes
// text is markup-rendered HTML and passes through unescaped; answer text
// is plain and the templates escape it.
func documentView(model exam.Model, stamp Stamp) view {
	questions := make([]questionView, 0, len(model.Questions))
	for _, q := range model.Questions {
		correct := make(map[int]bool, len(q.Correct))
		for _, index := range q.Correct {
			correct[index] = true
		}
		answers := make([]answerView, 0, len(q.Answers))
		for i, answer := range q.Answers {
			answers = append(answers, answerView{
				Letter:  answerLetter(i),
				Text:    answer,
				Correct: correct[i],
			})
		}
		questions = append(questions, questionView{
			Text:    template.HTML(q.Question),
			Notes:   template.HTML(q.Notes),
			Open:    q.Format == exam.FormatOpen,
			Answers: answers,
		})
	}
	return view{
		Title:     model.Metadata.Text("title"),
		Course:    model.Metadata.Text("course"),
		Date:      model.Metadata.Text("date"),
		Questions: questions,
		BuildID:   stamp.BuildID,
		BuiltOn:   stamp.Date.Format("2006-01-02"),
	}
}

// answerLetter labels answers A, B, ... Z, AA, AB, ... like spreadsheet
// columns.
func answerLetter(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	return answerLetter(index/26-1) + string(rune('A'+index%26))
}
