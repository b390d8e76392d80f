package quiz

type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "BOOLEAN"
	QuestionTypeInput    QuestionType = "INPUT"
	QuestionTypeCheckbox QuestionType = "CHECKBOX"
)

var AllQuestionTypes = []QuestionType{
	QuestionTypeBoolean,
	QuestionTypeInput,
	QuestionTypeCheckbox,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}
