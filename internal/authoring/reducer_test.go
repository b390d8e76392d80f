package authoring_test

import (
	"testing"

	"github.com/saulo-duarte/quiz-api/internal/authoring"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkboxDraft(options ...string) authoring.Draft {
	d := authoring.Reduce(authoring.NewDraft(), authoring.SetType{Index: 0, Type: quiz.QuestionTypeCheckbox})
	d.Questions[0].Options = options
	return d
}

func TestNewDraft(t *testing.T) {
	d := authoring.NewDraft()

	require.Len(t, d.Questions, 1)
	assert.Equal(t, quiz.QuestionTypeBoolean, d.Questions[0].Type)
	assert.Equal(t, true, d.Questions[0].Answer)
	assert.Nil(t, d.Questions[0].Options)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	d := checkboxDraft("Paris", "Lyon")
	before := authoring.Reduce(d, authoring.ToggleAnswer{Index: 0, Option: "Paris"})

	after := authoring.ReduceAll(before,
		authoring.SetOption{Index: 0, Option: 0, Value: "Marseille"},
		authoring.AddOption{Index: 0},
		authoring.SetTitle{Title: "Cities"},
	)

	assert.Equal(t, []string{"Paris", "Lyon"}, before.Questions[0].Options)
	assert.Equal(t, []string{"Paris"}, before.Questions[0].Answer)
	assert.Equal(t, "", before.Title)

	assert.Equal(t, []string{"Marseille", "Lyon", ""}, after.Questions[0].Options)
	assert.Equal(t, []string{"Marseille"}, after.Questions[0].Answer)
	assert.Equal(t, "Cities", after.Title)
}

func TestQuestionList(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.AddQuestion{},
		authoring.SetText{Index: 1, Text: "second"},
		authoring.AddQuestion{},
		authoring.SetText{Index: 2, Text: "third"},
	)
	require.Len(t, d.Questions, 3)

	d = authoring.Reduce(d, authoring.RemoveQuestion{Index: 1})
	require.Len(t, d.Questions, 2)
	assert.Equal(t, "third", d.Questions[1].Text)

	d = authoring.ReduceAll(d, authoring.RemoveQuestion{Index: 0}, authoring.RemoveQuestion{Index: 0})
	require.Len(t, d.Questions, 1, "the last question is never removed")
	assert.Equal(t, "third", d.Questions[0].Text)

	assert.Equal(t, d, authoring.Reduce(d, authoring.RemoveQuestion{Index: 5}))
}

func TestSetTypeResetsAnswer(t *testing.T) {
	tests := []struct {
		name        string
		to          quiz.QuestionType
		wantAnswer  interface{}
		wantOptions []string
	}{
		{name: "to input", to: quiz.QuestionTypeInput, wantAnswer: ""},
		{name: "to boolean", to: quiz.QuestionTypeBoolean, wantAnswer: true},
		{name: "to checkbox", to: quiz.QuestionTypeCheckbox, wantAnswer: []string{}, wantOptions: []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := checkboxDraft("Paris", "Lyon")
			d = authoring.Reduce(d, authoring.ToggleAnswer{Index: 0, Option: "Lyon"})

			d = authoring.Reduce(d, authoring.SetType{Index: 0, Type: tt.to})

			assert.Equal(t, tt.to, d.Questions[0].Type)
			assert.Equal(t, tt.wantAnswer, d.Questions[0].Answer)
			assert.Equal(t, tt.wantOptions, d.Questions[0].Options)
		})
	}
}

func TestTypedAnswerEdits(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.AddQuestion{},
		authoring.SetType{Index: 1, Type: quiz.QuestionTypeInput},
		authoring.SetBooleanAnswer{Index: 0, Value: false},
		authoring.SetInputAnswer{Index: 1, Value: "Paris"},
	)
	assert.Equal(t, false, d.Questions[0].Answer)
	assert.Equal(t, "Paris", d.Questions[1].Answer)

	unchanged := authoring.ReduceAll(d,
		authoring.SetInputAnswer{Index: 0, Value: "nope"},
		authoring.SetBooleanAnswer{Index: 1, Value: true},
		authoring.AddOption{Index: 0},
		authoring.ToggleAnswer{Index: 1, Option: "Paris"},
	)
	assert.Equal(t, d, unchanged)
}

func TestCheckboxOptionEdits(t *testing.T) {
	t.Run("RenameSelectedOptionKeepsSelection", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon")
		d = authoring.Reduce(d, authoring.ToggleAnswer{Index: 0, Option: "Paris"})

		d = authoring.Reduce(d, authoring.SetOption{Index: 0, Option: 0, Value: "Nice"})

		assert.Equal(t, []string{"Nice", "Lyon"}, d.Questions[0].Options)
		assert.Equal(t, []string{"Nice"}, d.Questions[0].Answer)
	})

	t.Run("RenameSelectedOptionToBlankDeselects", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon")
		d = authoring.ReduceAll(d,
			authoring.ToggleAnswer{Index: 0, Option: "Paris"},
			authoring.ToggleAnswer{Index: 0, Option: "Lyon"},
		)

		d = authoring.Reduce(d, authoring.SetOption{Index: 0, Option: 0, Value: ""})

		assert.Equal(t, []string{"", "Lyon"}, d.Questions[0].Options)
		assert.Equal(t, []string{"Lyon"}, d.Questions[0].Answer)
	})

	t.Run("RenameUnselectedOptionLeavesSelection", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon")
		d = authoring.Reduce(d, authoring.ToggleAnswer{Index: 0, Option: "Lyon"})

		d = authoring.Reduce(d, authoring.SetOption{Index: 0, Option: 0, Value: "Nice"})

		assert.Equal(t, []string{"Lyon"}, d.Questions[0].Answer)
	})

	t.Run("ToggleTwiceDeselects", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon")
		d = authoring.ReduceAll(d,
			authoring.ToggleAnswer{Index: 0, Option: "Paris"},
			authoring.ToggleAnswer{Index: 0, Option: "Paris"},
		)
		assert.Equal(t, []string{}, d.Questions[0].Answer)
	})

	t.Run("BlankOptionCannotBeSelected", func(t *testing.T) {
		d := authoring.Reduce(checkboxDraft("", "Lyon"), authoring.ToggleAnswer{Index: 0, Option: " "})
		assert.Equal(t, []string{}, d.Questions[0].Answer)
	})

	t.Run("RemoveSelectedOption", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon", "Nice")
		d = authoring.ReduceAll(d,
			authoring.ToggleAnswer{Index: 0, Option: "Lyon"},
			authoring.ToggleAnswer{Index: 0, Option: "Nice"},
			authoring.RemoveOption{Index: 0, Option: 1},
		)

		assert.Equal(t, []string{"Paris", "Nice"}, d.Questions[0].Options)
		assert.Equal(t, []string{"Nice"}, d.Questions[0].Answer)
	})

	t.Run("OutOfRangeOptionIsIgnored", func(t *testing.T) {
		d := checkboxDraft("Paris", "Lyon")
		assert.Equal(t, d, authoring.Reduce(d, authoring.SetOption{Index: 0, Option: 2, Value: "x"}))
		assert.Equal(t, d, authoring.Reduce(d, authoring.RemoveOption{Index: 0, Option: -1}))
	})
}
