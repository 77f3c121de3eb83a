package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pulseform/survey-server/config"
	"github.com/pulseform/survey-server/models"
)

// CheckSurveyOwner loads the survey into the context and asserts ownership.
// Missing or soft-deleted surveys are 404; a survey owned by someone else
// is 403, so "access denied" stays distinguishable from "not found".
func CheckSurveyOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid survey id"})
			return
		}

		var s models.Survey
		if err := config.DB.
			Where("id = ? AND status <> 'deleted'", id).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not load survey"})
			return
		}

		if s.OwnerID == nil || *s.OwnerID != u.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You don't have permission to access this survey"})
			return
		}

		c.Set(CtxSurvey, s)
		c.Next()
	}
}
