package models

import "encoding/json"

// Persisted question type tags.
const (
	TypeYesNo          = "yes_no"
	TypeMultipleChoice = "multiple_choice"
	TypeRating         = "rating"
)

// Rating answers are integers in [RatingMin, RatingMax].
const (
	RatingMin = 1
	RatingMax = 5
)

type Question struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	SurveyID    uint     `json:"survey_id"`
	Survey      Survey   `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
	Text        string   `gorm:"type:text;not null" json:"text"`
	Type        string   `gorm:"size:50;not null" json:"type"`
	OrderNumber int      `gorm:"default:0" json:"order_number"` // 1-based, gapless per survey
	Required    bool     `gorm:"default:false" json:"required"`
	OptionsJSON string   `gorm:"type:text" json:"-"` // JSON array, multiple_choice only
	Answers     []Answer `gorm:"foreignKey:QuestionID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// Options decodes OptionsJSON. Returns nil for non-choice questions or
// malformed stored JSON.
func (q *Question) Options() []string {
	if q.OptionsJSON == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.OptionsJSON), &opts); err != nil {
		return nil
	}
	return opts
}

func (q *Question) SetOptions(opts []string) error {
	if opts == nil {
		q.OptionsJSON = ""
		return nil
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	q.OptionsJSON = string(b)
	return nil
}
