package models

import "time"

type Survey struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"column:title;size:255;not null" json:"title"`
	Description   *string   `gorm:"column:description;type:text" json:"description"`
	OwnerID       *uint     `gorm:"column:owner_id" json:"owner_id"`
	Status        string    `gorm:"column:status;size:20;default:'active'" json:"status"` // active | deleted
	ShareToken    string    `gorm:"column:share_token;size:64;uniqueIndex" json:"share_token"`
	ResponseCount int       `gorm:"column:response_count" json:"response_count"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Owner *User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Questions []Question `gorm:"foreignKey:SurveyID" json:"-"`
	Responses []Response `gorm:"foreignKey:SurveyID" json:"-"`
}

func (Survey) TableName() string {
	return "surveys"
}
