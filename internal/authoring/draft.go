// Package authoring holds the in-progress, possibly invalid quiz a user is
// editing, the edits that can be applied to it, and its submission.
package authoring

import "github.com/saulo-duarte/quiz-api/internal/quiz"

type QuestionDraft struct {
	Type    quiz.QuestionType `json:"type"`
	Text    string            `json:"text"`
	Options []string          `json:"options,omitempty"`
	Answer  interface{}       `json:"answer"`
}

type Draft struct {
	Title     string          `json:"title"`
	Questions []QuestionDraft `json:"questions"`
}

func NewDraft() Draft {
	return Draft{Questions: []QuestionDraft{NewQuestionDraft(quiz.QuestionTypeBoolean)}}
}

// NewQuestionDraft returns an empty question with the default answer of t.
func NewQuestionDraft(t quiz.QuestionType) QuestionDraft {
	q := QuestionDraft{Type: t}
	resetAnswer(&q)
	return q
}

func resetAnswer(q *QuestionDraft) {
	switch q.Type {
	case quiz.QuestionTypeBoolean:
		q.Answer = true
		q.Options = nil
	case quiz.QuestionTypeInput:
		q.Answer = ""
		q.Options = nil
	case quiz.QuestionTypeCheckbox:
		q.Answer = []string{}
		q.Options = []string{"", ""}
	default:
		q.Answer = nil
		q.Options = nil
	}
}

func (d Draft) clone() Draft {
	out := Draft{Title: d.Title}
	if d.Questions != nil {
		out.Questions = make([]QuestionDraft, len(d.Questions))
		for i, q := range d.Questions {
			out.Questions[i] = q.clone()
		}
	}
	return out
}

func (q QuestionDraft) clone() QuestionDraft {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	switch a := q.Answer.(type) {
	case []string:
		out.Answer = append([]string{}, a...)
	case []interface{}:
		out.Answer = Selection(a)
	}
	return out
}

// Selection returns the CHECKBOX answer set of a draft answer. Drafts loaded
// from JSON carry []interface{} rather than []string.
func Selection(answer interface{}) []string {
	switch a := answer.(type) {
	case []string:
		return append([]string{}, a...)
	case []interface{}:
		out := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func (d Draft) inRange(index int) bool {
	return index >= 0 && index < len(d.Questions)
}
