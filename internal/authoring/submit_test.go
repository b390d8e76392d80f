package authoring_test

import (
	"encoding/json"
	"testing"

	"github.com/saulo-duarte/quiz-api/internal/authoring"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCleansDraft(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.SetTitle{Title: "  Geography "},
		authoring.SetText{Index: 0, Text: " Is Earth round? "},
		authoring.AddQuestion{},
		authoring.SetType{Index: 1, Type: quiz.QuestionTypeInput},
		authoring.SetText{Index: 1, Text: "Capital of France"},
		authoring.SetInputAnswer{Index: 1, Value: " Paris "},
		authoring.AddQuestion{},
		authoring.SetType{Index: 2, Type: quiz.QuestionTypeCheckbox},
		authoring.SetText{Index: 2, Text: "French cities"},
		authoring.SetOption{Index: 2, Option: 0, Value: "Paris"},
		authoring.SetOption{Index: 2, Option: 1, Value: " Lyon "},
		authoring.ToggleAnswer{Index: 2, Option: " Lyon "},
	)

	dto, err := authoring.Submit(d)
	require.NoError(t, err)

	assert.Equal(t, "Geography", dto.Title)
	require.Len(t, dto.Questions, 3)

	assert.Equal(t, "Is Earth round?", dto.Questions[0].Text)
	assert.JSONEq(t, `true`, string(dto.Questions[0].Answer))

	assert.JSONEq(t, `"Paris"`, string(dto.Questions[1].Answer))

	assert.Equal(t, []string{"Paris", "Lyon"}, dto.Questions[2].Options)
	assert.JSONEq(t, `["Lyon"]`, string(dto.Questions[2].Answer))

	_, err = quiz.Validate(dto)
	assert.NoError(t, err)
}

func TestSubmitRejectsBlankOption(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.SetTitle{Title: "Cities"},
		authoring.SetType{Index: 0, Type: quiz.QuestionTypeCheckbox},
		authoring.SetText{Index: 0, Text: "French cities"},
		authoring.SetOption{Index: 0, Option: 0, Value: "Paris"},
		authoring.SetOption{Index: 0, Option: 1, Value: "Lyon"},
		authoring.AddOption{Index: 0},
		authoring.ToggleAnswer{Index: 0, Option: "Lyon"},
	)

	_, err := authoring.Submit(d)
	verr, ok := quiz.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "options must not be empty", verr.Fields["questions.0.options"])

	cleaned := authoring.Clean(d)
	assert.Equal(t, []string{"Paris", "Lyon"}, cleaned.Questions[0].Options)
}

func TestSubmitReportsFieldErrors(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.SetTitle{Title: "ab"},
		authoring.SetType{Index: 0, Type: quiz.QuestionTypeCheckbox},
		authoring.SetText{Index: 0, Text: "Cities"},
		authoring.SetOption{Index: 0, Option: 0, Value: "Paris"},
	)

	_, err := authoring.Submit(d)
	verr, ok := quiz.IsValidationError(err)
	require.True(t, ok)

	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "questions.0.options")
	assert.Contains(t, verr.Fields, "questions.0.answer")
}

func TestSubmitCoercesBooleanAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer interface{}
		want   string
	}{
		{name: "lowercase true", answer: "true", want: "true"},
		{name: "capitalised true", answer: "True", want: "true"},
		{name: "other string", answer: "yes", want: "false"},
		{name: "uppercase TRUE", answer: "TRUE", want: "false"},
		{name: "nil", answer: nil, want: "false"},
		{name: "bool false", answer: false, want: "false"},
		{name: "json number", answer: float64(1), want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := authoring.Reduce(authoring.NewDraft(), authoring.SetTitle{Title: "Quiz"})
			d = authoring.Reduce(d, authoring.SetText{Index: 0, Text: "Q"})
			d.Questions[0].Answer = tt.answer

			dto, err := authoring.Submit(d)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(dto.Questions[0].Answer))
		})
	}
}

func TestDraftSurvivesJSON(t *testing.T) {
	d := authoring.ReduceAll(authoring.NewDraft(),
		authoring.SetTitle{Title: "Cities"},
		authoring.SetType{Index: 0, Type: quiz.QuestionTypeCheckbox},
		authoring.SetText{Index: 0, Text: "French cities"},
		authoring.SetOption{Index: 0, Option: 0, Value: "Paris"},
		authoring.SetOption{Index: 0, Option: 1, Value: "Lyon"},
		authoring.ToggleAnswer{Index: 0, Option: "Paris"},
	)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	var loaded authoring.Draft
	require.NoError(t, json.Unmarshal(raw, &loaded))

	loaded = authoring.Reduce(loaded, authoring.SetOption{Index: 0, Option: 0, Value: "Nice"})
	assert.Equal(t, []string{"Nice"}, authoring.Selection(loaded.Questions[0].Answer))

	dto, err := authoring.Submit(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, `["Nice"]`, string(dto.Questions[0].Answer))
}
