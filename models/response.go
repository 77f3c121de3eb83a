package models

import "time"

// Response is one anonymous submission event for a survey. Write-once:
// there is no update or delete path.
type Response struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SurveyID  uint      `gorm:"column:survey_id;not null" json:"survey_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Answers []Answer `gorm:"foreignKey:ResponseID" json:"answers"`
}

func (Response) TableName() string {
	return "responses"
}
