package models

import (
	"fmt"
	"strconv"
)

type Answer struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ResponseID uint     `json:"response_id"`
	Response   Response `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID uint     `json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Value      string   `gorm:"type:text" json:"value"`
}

func (Answer) TableName() string {
	return "answers"
}

// ValidateAnswerValue checks a raw submitted value against its question's
// type: "yes"/"no" for yes_no, one of the configured options for
// multiple_choice, an integer in [1,5] for rating. This is the only place
// raw respondent input is admitted; the aggregator still filters
// defensively rather than trusting stored rows.
func ValidateAnswerValue(q *Question, value string) error {
	switch q.Type {
	case TypeYesNo:
		if value != "yes" && value != "no" {
			return fmt.Errorf("question %d: value must be \"yes\" or \"no\"", q.ID)
		}
	case TypeMultipleChoice:
		for _, opt := range q.Options() {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("question %d: value is not a configured option", q.ID)
	case TypeRating:
		n, err := strconv.Atoi(value)
		if err != nil || n < RatingMin || n > RatingMax {
			return fmt.Errorf("question %d: rating must be an integer between %d and %d", q.ID, RatingMin, RatingMax)
		}
	default:
		return fmt.Errorf("question %d: unknown question type %q", q.ID, q.Type)
	}
	return nil
}
