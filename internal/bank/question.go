package bank

// QuestionType represents the exercise format of a question.
type QuestionType string

const (
	TypeMultipleChoice       QuestionType = "multiple-choice"
	TypeFillBlank            QuestionType = "fill-blank"
	TypeErrorCorrection      QuestionType = "error-correction"
	TypeSentenceConstruction QuestionType = "sentence-construction"
)

// AllQuestionTypes returns the known question types in display order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		TypeMultipleChoice,
		TypeFillBlank,
		TypeErrorCorrection,
		TypeSentenceConstruction,
	}
}

// Label returns a human-readable label for a question type, e.g.
// "multiple choice" for TypeMultipleChoice.
func (t QuestionType) Label() string {
	switch t {
	case TypeMultipleChoice:
		return "multiple choice"
	case TypeFillBlank:
		return "fill blank"
	case TypeErrorCorrection:
		return "error correction"
	case TypeSentenceConstruction:
		return "sentence construction"
	default:
		return string(t)
	}
}

// Question represents a single practice question tied to a grammar rule.
// Options is populated only for multiple-choice questions.
type Question struct {
	ID          string
	RuleID      string
	Type        QuestionType
	Prompt      string
	Options     []string
	Answer      string
	Explanation string
}
