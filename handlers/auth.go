package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/models"
	"github.com/expenseinsight/expense-api/services"
	"github.com/expenseinsight/expense-api/utils"
)

type AuthHandler struct {
	Users *services.UserService
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.LogAuthAction("register", user.Email, true)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": models.Profile{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Absent account and wrong password are indistinguishable on the wire.
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "2FA code required", "requires_2fa": true})
			return
		}
		if user.TOTPSecret == "" || !utils.VerifyTOTP(user.TOTPSecret, req.TOTPCode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
			return
		}
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.LogAuthAction("login", user.Email, true)

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User: models.Profile{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
