package exam

import (
	"examgen/internal/markup"
	"examgen/internal/source"
)

// Options injects assembler collaborators. Nil fields fall back to the
// production defaults.
type Options struct {
	Markup   markup.Renderer
	Shuffler *Shuffler
}

// Model is the fully built exam: validated questions in display order
// plus resolved metadata. Read-only once assembled.
type Model struct {
	Questions []Question
	Metadata  Metadata
}

// Assembler builds exam models from raw source text. Each Assemble call
// owns its own question counter, so one assembler may serve many builds
// but a single build never shares state with another.
type Assembler struct {
	markup   markup.Renderer
	shuffler *Shuffler
}

func NewAssembler(opts Options) *Assembler {
	assembler := &Assembler{markup: opts.Markup, shuffler: opts.Shuffler}
	if assembler.markup == nil {
		assembler.markup = markup.NewMarkdown()
	}
	if assembler.shuffler == nil {
		assembler.shuffler = NewShuffler()
	}
	return assembler
}

// Assemble parses raw source text and builds the exam model. The first
// invalid block aborts the build; no partial model is ever returned.
func (a *Assembler) Assemble(data []byte) (Model, error) {
	src, err := source.Parse(data)
	if err != nil {
		return Model{}, err
	}
	meta := ResolveMetadata(src.Preamble)

	counter := 0
	questions := make([]Question, 0, len(src.Blocks))
	for _, block := range src.Blocks {
		counter++
		question, err := a.buildQuestion(block, meta, counter)
		if err != nil {
			return Model{}, err
		}
		questions = append(questions, question)
	}

	if meta.ShuffleQuestions() {
		a.shuffler.shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	return Model{Questions: questions, Metadata: meta}, nil
}
