package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulseform/survey-server/config"
	"github.com/pulseform/survey-server/middleware"
	"github.com/pulseform/survey-server/models"
	"github.com/pulseform/survey-server/report"
)

type exportRequest struct {
	Format string `json:"format"` // csv (default) or xlsx
}

// CreateExport queues a background export of all responses and returns the
// job id to poll.
func CreateExport(c *gin.Context) {
	s := c.MustGet(middleware.CtxSurvey).(models.Survey)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" && req.Format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported format"})
		return
	}

	job := models.ExportJob{
		JobID:    uuid.New().String(),
		SurveyID: s.ID,
		Format:   req.Format,
		Status:   "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not queue export"})
		return
	}

	go processExportJob(job.JobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": job.JobID,
		"status": "queued",
	})
}

// GetExport returns the job status, or the file itself once done. Only the
// owner of the exported survey may fetch it.
func GetExport(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load job"})
		return
	}

	var s models.Survey
	if err := config.DB.First(&s, job.SurveyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load survey"})
		return
	}
	if s.OwnerID == nil || *s.OwnerID != u.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to access this export"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func failExportJob(job *models.ExportJob, err error) {
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	questions, responses, err := loadReportInput(job.SurveyID)
	if err != nil {
		failExportJob(&job, err)
		return
	}

	var data []byte
	switch job.Format {
	case "xlsx":
		data, err = report.XLSX(questions, responses)
	default:
		data, err = report.CSV(questions, responses)
	}
	if err != nil {
		failExportJob(&job, err)
		return
	}

	outDir := "./exports"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		failExportJob(&job, err)
		return
	}
	outPath := path.Join(outDir, fmt.Sprintf("export_%s.%s", job.JobID, job.Format))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		failExportJob(&job, err)
		return
	}

	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": outPath})
}
