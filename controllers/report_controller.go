package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseform/survey-server/config"
	"github.com/pulseform/survey-server/middleware"
	"github.com/pulseform/survey-server/models"
	"github.com/pulseform/survey-server/report"
)

// loadReportInput fetches the ordered question list and the responses with
// their answers joined, which is the whole input contract of the report
// package. Nothing is cached; every report view recomputes from the store.
func loadReportInput(surveyID uint) ([]models.Question, []report.ResponseData, error) {
	questions, err := orderedQuestions(surveyID)
	if err != nil {
		return nil, nil, err
	}

	var responses []models.Response
	if err := config.DB.
		Preload("Answers").
		Where("survey_id = ?", surveyID).
		Order("created_at ASC, id ASC").
		Find(&responses).Error; err != nil {
		return nil, nil, err
	}

	data := make([]report.ResponseData, 0, len(responses))
	for _, r := range responses {
		rd := report.ResponseData{ID: r.ID, CreatedAt: r.CreatedAt}
		for _, a := range r.Answers {
			rd.Answers = append(rd.Answers, report.AnswerData{QuestionID: a.QuestionID, Value: a.Value})
		}
		data = append(data, rd)
	}
	return questions, data, nil
}

// GetReport returns the per-question aggregated series for the owner's
// chart view.
func GetReport(c *gin.Context) {
	s := c.MustGet(middleware.CtxSurvey).(models.Survey)

	questions, responses, err := loadReportInput(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load report data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"survey_id":      s.ID,
		"title":          s.Title,
		"response_count": len(responses),
		"results":        report.Aggregate(questions, responses),
	})
}

// GetReportCSV streams the tabular export directly.
func GetReportCSV(c *gin.Context) {
	s := c.MustGet(middleware.CtxSurvey).(models.Survey)

	questions, responses, err := loadReportInput(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load report data"})
		return
	}

	data, err := report.CSV(questions, responses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not build CSV"})
		return
	}

	filename := fmt.Sprintf("survey-%d-responses.csv", s.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
