package users

import (
	"net/http"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// MeResponse is the read-only identity projection exposed to the frontend.
type MeResponse struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Lastname:   user.Lastname,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	})
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	c.Redirect(http.StatusTemporaryRedirect, signinRedirectURL())
}

func signinRedirectURL() string {
	return config.APP_URL + "/signin"
}
