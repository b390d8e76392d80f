package authoring

import (
	"strings"

	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

// Action is one edit of a draft. Edits addressing a question or option that
// does not exist leave the draft unchanged.
type Action interface {
	apply(d Draft) Draft
}

// Reduce returns the draft after a. The input draft is never modified.
func Reduce(d Draft, a Action) Draft {
	return a.apply(d.clone())
}

// ReduceAll applies actions in order.
func ReduceAll(d Draft, actions ...Action) Draft {
	for _, a := range actions {
		d = Reduce(d, a)
	}
	return d
}

type SetTitle struct {
	Title string
}

func (a SetTitle) apply(d Draft) Draft {
	d.Title = a.Title
	return d
}

// AddQuestion appends a BOOLEAN question answered true.
type AddQuestion struct{}

func (AddQuestion) apply(d Draft) Draft {
	d.Questions = append(d.Questions, NewQuestionDraft(quiz.QuestionTypeBoolean))
	return d
}

// RemoveQuestion never removes the last remaining question.
type RemoveQuestion struct {
	Index int
}

func (a RemoveQuestion) apply(d Draft) Draft {
	if !d.inRange(a.Index) || len(d.Questions) <= 1 {
		return d
	}
	d.Questions = append(d.Questions[:a.Index], d.Questions[a.Index+1:]...)
	return d
}

// SetType switches a question's type and always resets its answer, and its
// options, to the defaults of the new type.
type SetType struct {
	Index int
	Type  quiz.QuestionType
}

func (a SetType) apply(d Draft) Draft {
	if !d.inRange(a.Index) {
		return d
	}
	q := &d.Questions[a.Index]
	q.Type = a.Type
	resetAnswer(q)
	return d
}

type SetText struct {
	Index int
	Text  string
}

func (a SetText) apply(d Draft) Draft {
	if !d.inRange(a.Index) {
		return d
	}
	d.Questions[a.Index].Text = a.Text
	return d
}

type SetBooleanAnswer struct {
	Index int
	Value bool
}

func (a SetBooleanAnswer) apply(d Draft) Draft {
	if !d.inRange(a.Index) || d.Questions[a.Index].Type != quiz.QuestionTypeBoolean {
		return d
	}
	d.Questions[a.Index].Answer = a.Value
	return d
}

type SetInputAnswer struct {
	Index int
	Value string
}

func (a SetInputAnswer) apply(d Draft) Draft {
	if !d.inRange(a.Index) || d.Questions[a.Index].Type != quiz.QuestionTypeInput {
		return d
	}
	d.Questions[a.Index].Answer = a.Value
	return d
}

// AddOption appends an empty option to a CHECKBOX question.
type AddOption struct {
	Index int
}

func (a AddOption) apply(d Draft) Draft {
	if !d.inRange(a.Index) || d.Questions[a.Index].Type != quiz.QuestionTypeCheckbox {
		return d
	}
	d.Questions[a.Index].Options = append(d.Questions[a.Index].Options, "")
	return d
}

// SetOption renames an option. A selected option stays selected under its new
// text, or is deselected when the new text is blank.
type SetOption struct {
	Index  int
	Option int
	Value  string
}

func (a SetOption) apply(d Draft) Draft {
	if !d.inRange(a.Index) {
		return d
	}
	q := &d.Questions[a.Index]
	if q.Type != quiz.QuestionTypeCheckbox || a.Option < 0 || a.Option >= len(q.Options) {
		return d
	}

	old := q.Options[a.Option]
	q.Options[a.Option] = a.Value

	selected := Selection(q.Answer)
	if indexOf(selected, old) < 0 {
		return d
	}
	next := without(selected, old)
	if strings.TrimSpace(a.Value) != "" {
		next = append(next, a.Value)
	}
	q.Answer = next
	return d
}

// ToggleAnswer selects or deselects an option. Blank options cannot be selected.
type ToggleAnswer struct {
	Index  int
	Option string
}

func (a ToggleAnswer) apply(d Draft) Draft {
	if !d.inRange(a.Index) || strings.TrimSpace(a.Option) == "" {
		return d
	}
	q := &d.Questions[a.Index]
	if q.Type != quiz.QuestionTypeCheckbox {
		return d
	}

	selected := Selection(q.Answer)
	if indexOf(selected, a.Option) >= 0 {
		q.Answer = without(selected, a.Option)
	} else {
		q.Answer = append(selected, a.Option)
	}
	return d
}

// RemoveOption drops an option and deselects it.
type RemoveOption struct {
	Index  int
	Option int
}

func (a RemoveOption) apply(d Draft) Draft {
	if !d.inRange(a.Index) {
		return d
	}
	q := &d.Questions[a.Index]
	if q.Type != quiz.QuestionTypeCheckbox || a.Option < 0 || a.Option >= len(q.Options) {
		return d
	}

	removed := q.Options[a.Option]
	q.Options = append(q.Options[:a.Option], q.Options[a.Option+1:]...)

	selected := Selection(q.Answer)
	if indexOf(selected, removed) >= 0 {
		q.Answer = without(selected, removed)
	}
	return d
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}

func without(values []string, drop string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
