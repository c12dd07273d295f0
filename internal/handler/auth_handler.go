package handler

import (
	"net/http"

	"arcade/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries a signed admin token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginAdmin godoc
// @Summary      Log in as catalog admin
// @Description  Checks the admin password and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Admin credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      503  {object}  ErrorResponse "Admin login is not configured"
// @Router       /auth/login [post]
func (h *Handler) LoginAdmin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Config.AdminPasswordHash == "" || h.Config.JWTSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.Config.AdminPasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(h.Config.JWTSecret, "admin", jwt.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
