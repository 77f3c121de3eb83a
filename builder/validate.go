package builder

import "strings"

// Validation rules, reported one at a time: the first violation found wins
// and the author fixes and retries.
const (
	RuleTitleRequired = "title_required"
	RuleNoQuestions   = "no_questions"
	RuleQuestionText  = "question_text_required"
	RuleEmptyOption   = "option_text_required"
	RuleTooFewOptions = "too_few_options"
	RuleUnknownType   = "unknown_question_type"
)

type ValidationError struct {
	Rule       string `json:"rule"`
	QuestionID string `json:"question_id,omitempty"`
	Message    string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the draft's structural invariants before save: non-empty
// title, at least one question, non-empty question text, and for multiple
// choice at least MinOptions options none of which is blank.
func (d *Draft) Validate() *ValidationError {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Rule: RuleTitleRequired, Message: "survey title is required"}
	}
	if len(d.Questions) == 0 {
		return &ValidationError{Rule: RuleNoQuestions, Message: "add at least one question"}
	}
	for _, q := range d.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return &ValidationError{Rule: RuleQuestionText, QuestionID: q.ID, Message: "all questions must have text"}
		}
		switch q.Type {
		case TypeYesNo, TypeRating:
		case TypeMultipleChoice:
			if len(q.Options) < MinOptions {
				return &ValidationError{Rule: RuleTooFewOptions, QuestionID: q.ID, Message: "multiple choice questions need at least 2 options"}
			}
			for _, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					return &ValidationError{Rule: RuleEmptyOption, QuestionID: q.ID, Message: "all multiple choice options must have text"}
				}
			}
		default:
			return &ValidationError{Rule: RuleUnknownType, QuestionID: q.ID, Message: "unknown question type"}
		}
	}
	return nil
}
