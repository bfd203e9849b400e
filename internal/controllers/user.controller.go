package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"ricettario/internal/middleware"
	"ricettario/internal/models"
	"ricettario/internal/repository"
	"ricettario/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Nickname string `json:"nickname" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Nickname string `json:"nickname" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
}

type UserController struct {
	userRepo   repository.UserRepository
	resetRepo  repository.ResetPasswordRepository
	mailConfig utils.MailConfig
}

func NewUserController(userRepo repository.UserRepository, resetRepo repository.ResetPasswordRepository) *UserController {
	return &UserController{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		mailConfig: utils.LoadMailConfig(),
	}
}

func cookieSecure() bool {
	return os.Getenv("APP_ENV") == "production"
}

// RegisterUser godoc
// @Summary Register a new user
// @Description Create an account with a unique nickname and email
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Nickname or email already in use"
// @Router /users [post]
func (uc *UserController) RegisterUser(c *gin.Context) {
	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "Failed to register user", err)
		return
	}

	user := models.User{
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: string(hash),
	}

	if err := uc.userRepo.CreateUser(&user); err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Nickname or email already in use",
				"error":   "Choose a different nickname or email",
			})
			return
		}
		internalError(c, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// LoginUser godoc
// @Summary Authenticate a user
// @Description Verifies credentials, sets the session cookie and returns a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "User logged in successfully"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /login [post]
func (uc *UserController) LoginUser(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		// Same response as a wrong password, the address is not confirmed
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	token, err := utils.GenerateAuthToken(user.ID, user.Nickname)
	if err != nil {
		internalError(c, "Failed to generate token", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, utils.CookieMaxAge, "/", "", cookieSecure(), true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token":    token,
			"user_id":  user.ID,
			"nickname": user.Nickname,
		},
	})
}

// LogoutUser godoc
// @Summary Log out the current user
// @Description Clears the session cookie
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User logged out successfully"
// @Router /logout [post]
func (uc *UserController) LogoutUser(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", cookieSecure(), true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged out successfully",
		"data":    nil,
	})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.userRepo.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// UpdateUser godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body UpdateUserRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Failure 409 {object} map[string]interface{} "Nickname or email already in use"
// @Router /users/me [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.Nickname = req.Nickname
	user.Email = req.Email

	if err := uc.userRepo.UpdateUser(user); err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Nickname or email already in use",
				"error":   "Choose a different nickname or email",
			})
			return
		}
		internalError(c, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Emails a single-use reset token valid for 30 minutes
// @Tags users
// @Accept json
// @Produce json
// @Param email body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset token sent"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /request-password-reset [post]
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.userRepo.GetUserByEmail(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No account associated with this email",
		})
		return
	}

	// Invalidate any previous token before issuing a new one
	if err := uc.resetRepo.DeleteByEmail(req.Email); err != nil {
		internalError(c, "Failed to create reset token", err)
		return
	}

	reset := &models.ResetPassword{
		Email:     req.Email,
		Token:     utils.GenerateResetToken(),
		ExpiresAt: time.Now().Add(utils.ResetTokenDuration),
	}

	if err := uc.resetRepo.CreateResetPassword(reset); err != nil {
		internalError(c, "Failed to create reset token", err)
		return
	}

	go func() {
		if err := utils.SendEmail(uc.mailConfig, req.Email, "Reset della password",
			"Il tuo token per il reset della password è: "+reset.Token); err != nil {
			log.Printf("Failed to send reset email to %s: %v", req.Email, err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reset token sent successfully",
		"data":    nil,
	})
}

// ResetPassword godoc
// @Summary Reset the password with a token
// @Description Validates the single-use token (30-minute expiry) and stores the new credential hash
// @Tags users
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} map[string]interface{} "Password reset successfully"
// @Failure 401 {object} map[string]interface{} "Invalid or expired reset token"
// @Router /reset-password [post]
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	reset, err := uc.resetRepo.FindValidByToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired reset token",
			"error":   "Request a new password reset",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "Failed to reset password", err)
		return
	}

	if err := uc.userRepo.UpdatePassword(reset.Email, string(hash)); err != nil {
		internalError(c, "Failed to reset password", err)
		return
	}

	// Single use: the token cannot be redeemed twice
	if err := uc.resetRepo.DeleteByEmail(reset.Email); err != nil {
		log.Printf("Failed to delete reset token for %s: %v", reset.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully",
		"data":    nil,
	})
}
