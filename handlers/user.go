package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/middleware"
	"github.com/expenseinsight/expense-api/models"
	"github.com/expenseinsight/expense-api/services"
	"github.com/expenseinsight/expense-api/utils"
)

type UserHandler struct {
	Users *services.UserService
}

// ============================================================================
// PROFILE MANAGEMENT
// ============================================================================

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ============================================================================
// 2FA MANAGEMENT
// ============================================================================

func (h *UserHandler) SetupTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	secret, otpauthURL, err := utils.GenerateTOTPSecret(profile.Email)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	if err := h.Users.SetTOTPSecret(c.Request.Context(), userID, secret); err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.TOTPSetupResponse{
		Secret:     secret,
		OTPAuthURL: otpauthURL,
	})
}

func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Users.GetTOTPSecret(c.Request.Context(), userID)
	if err != nil || secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TOTP not set up"})
		return
	}

	if !utils.VerifyTOTP(secret, req.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid TOTP code"})
		return
	}

	if err := h.Users.SetTOTPEnabled(c.Request.Context(), userID, true); err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.SafeInfo("2FA enabled for user %s", userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "2FA enabled successfully",
		"enabled": true,
	})
}

func (h *UserHandler) DisableTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DisableTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := h.Users.GetPasswordHash(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	if !utils.CheckPassword(req.Password, hash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	secret, err := h.Users.GetTOTPSecret(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	if secret != "" && !utils.VerifyTOTP(secret, req.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
		return
	}

	if err := h.Users.SetTOTPEnabled(c.Request.Context(), userID, false); err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.SafeInfo("2FA disabled for user %s", userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "2FA disabled successfully",
		"enabled": false,
	})
}

// ============================================================================
// ACCOUNT DELETION
// ============================================================================

// DeleteAccount removes the caller's account, expenses and budget after a
// password confirmation.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := h.Users.GetPasswordHash(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	if !utils.CheckPassword(req.Password, hash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	if err := h.Users.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.SafeInfo("User %s account deleted", userID)

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
