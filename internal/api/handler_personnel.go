package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// ListPersonnel handles GET /personnel.
func ListPersonnel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var personnel []model.Personnel
		if err := db.Order("id").Find(&personnel).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve personnel"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": personnel})
	}
}

type createPersonnelRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	UserRole    string `json:"userRole"`
	ContactInfo string `json:"contactInfo"`
}

// CreatePersonnel handles POST /personnel.
func CreatePersonnel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPersonnelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		person := model.Personnel{
			FullName:    req.FullName,
			UserRole:    req.UserRole,
			ContactInfo: req.ContactInfo,
		}
		if err := db.Create(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create personnel"})
			return
		}
		c.JSON(http.StatusCreated, person)
	}
}
