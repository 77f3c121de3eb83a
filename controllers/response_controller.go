package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pulseform/survey-server/config"
	"github.com/pulseform/survey-server/models"
)

type answerReq struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

type submitResponseReq struct {
	Answers []answerReq `json:"answers" binding:"required"`
}

// SubmitResponse records one anonymous submission against the survey behind
// a share token. Required questions must be answered, every value is
// checked against its question's type at this boundary, and the response
// row plus all answer rows are written in one transaction.
func SubmitResponse(c *gin.Context) {
	token := c.Param("token")

	var s models.Survey
	err := config.DB.
		Where("share_token = ? AND status <> 'deleted'", token).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load survey"})
		return
	}

	var req submitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var questions []models.Question
	if err := config.DB.Where("survey_id = ?", s.ID).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load questions"})
		return
	}

	byID := make(map[uint]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	answered := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Question %d does not belong to this survey", a.QuestionID)})
			return
		}
		if _, dup := answered[a.QuestionID]; dup {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Question %d answered more than once", a.QuestionID)})
			return
		}
		if err := models.ValidateAnswerValue(q, a.Value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		answered[a.QuestionID] = a.Value
	}

	for i := range questions {
		q := &questions[i]
		if q.Required {
			if _, ok := answered[q.ID]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Please answer all required questions"})
				return
			}
		}
	}

	var response models.Response
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		response = models.Response{SurveyID: s.ID}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}
		for _, a := range req.Answers {
			answer := models.Answer{
				ResponseID: response.ID,
				QuestionID: a.QuestionID,
				Value:      a.Value,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Survey{}).
			Where("id = ?", s.ID).
			UpdateColumn("response_count", gorm.Expr("response_count + 1")).Error
	})
	if err != nil {
		log.Printf("submit response failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save your response. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response_id": response.ID, "message": "Response submitted"})
}
