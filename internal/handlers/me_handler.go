package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe resolves the caller's role-specific profile. If the profile row
// is missing (interrupted signup), it is re-provisioned from the signup
// metadata instead of failing.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	out := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	}

	switch user.Role {
	case models.RoleStudent:
		var p models.StudentProfile
		err := h.db.Where("user_id = ?", user.ID).First(&p).Error
		if err == gorm.ErrRecordNotFound {
			p = models.StudentProfile{
				UserID: user.ID,
				Name:   user.SignupName,
				School: user.SignupSchool,
			}
			err = h.db.Create(&p).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_resolve_profile"})
			return
		}
		out["profile"] = p

	case models.RoleSalon:
		var p models.SalonProfile
		err := h.db.Where("user_id = ?", user.ID).First(&p).Error
		if err == gorm.ErrRecordNotFound {
			p = models.SalonProfile{
				UserID: user.ID,
				Name:   user.SignupName,
			}
			err = h.db.Create(&p).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_resolve_profile"})
			return
		}
		out["profile"] = p
	}

	c.JSON(http.StatusOK, out)
}
