package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulseform/survey-server/builder"
	"github.com/pulseform/survey-server/config"
	"github.com/pulseform/survey-server/middleware"
	"github.com/pulseform/survey-server/models"
)

/* ========== Create survey from an authored draft ========== */

// CreateSurvey accepts the full authored draft, re-runs the builder
// validation server-side, then writes the survey and its questions in one
// transaction so a failed question batch never leaves an orphaned survey.
func CreateSurvey(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var draft builder.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	if verr := draft.Validate(); verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":     verr.Message,
			"rule":        verr.Rule,
			"question_id": verr.QuestionID,
		})
		return
	}

	survey := models.Survey{
		Title:      draft.Title,
		OwnerID:    &u.ID,
		Status:     "active",
		ShareToken: uuid.New().String(),
	}
	if draft.Description != "" {
		survey.Description = &draft.Description
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}
		questions := draft.Records()
		for i := range questions {
			questions[i].SurveyID = survey.ID
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		log.Printf("create survey failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create survey. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          survey.ID,
		"title":       survey.Title,
		"description": survey.Description,
		"owner_id":    survey.OwnerID,
		"share_token": survey.ShareToken,
		"created_at":  survey.CreatedAt,
	})
}

/* ========== Owner dashboard: list my surveys with response counts ========== */

func GetMySurveys(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var surveys []models.Survey
	if err := config.DB.
		Where("owner_id = ? AND status <> 'deleted'", u.ID).
		Order("created_at DESC").
		Find(&surveys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list surveys"})
		return
	}

	out := []gin.H{}
	for _, s := range surveys {
		out = append(out, gin.H{
			"id":             s.ID,
			"title":          s.Title,
			"description":    s.Description,
			"share_token":    s.ShareToken,
			"response_count": s.ResponseCount,
			"created_at":     s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"surveys": out})
}

/* ========== Survey detail (owner-only) ========== */

func GetSurveyDetail(c *gin.Context) {
	s := c.MustGet(middleware.CtxSurvey).(models.Survey)

	questions, err := orderedQuestions(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             s.ID,
		"title":          s.Title,
		"description":    s.Description,
		"share_token":    s.ShareToken,
		"response_count": s.ResponseCount,
		"created_at":     s.CreatedAt,
		"questions":      questionViews(questions),
	})
}

/* ========== Delete (soft) ========== */

func DeleteSurvey(c *gin.Context) {
	s := c.MustGet(middleware.CtxSurvey).(models.Survey)
	if err := config.DB.Model(&models.Survey{}).
		Where("id = ?", s.ID).
		Update("status", "deleted").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

/* ========== Public fetch by share token (respond page) ========== */

func GetPublicSurvey(c *gin.Context) {
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

	questions, err := orderedQuestions(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          s.ID,
		"title":       s.Title,
		"description": s.Description,
		"questions":   questionViews(questions),
	})
}

func orderedQuestions(surveyID uint) ([]models.Question, error) {
	var questions []models.Question
	err := config.DB.
		Where("survey_id = ?", surveyID).
		Order("order_number ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

func questionViews(questions []models.Question) []gin.H {
	out := []gin.H{}
	for i := range questions {
		q := &questions[i]
		view := gin.H{
			"id":           q.ID,
			"text":         q.Text,
			"type":         q.Type,
			"order_number": q.OrderNumber,
			"required":     q.Required,
		}
		if q.Type == models.TypeMultipleChoice {
			view["options"] = q.Options()
		}
		out = append(out, view)
	}
	return out
}
