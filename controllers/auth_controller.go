package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/entity"
	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/services"
	"github.com/Niksiiii/BuConnect/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type LoginRequest struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     entity.Role `json:"role" binding:"required"`
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.SignIn(req.Username, req.Password, req.Role)
	switch {
	case errors.Is(err, services.ErrSignInPending):
		resp.Conflict(c, err.Error())
		return
	case errors.Is(err, services.ErrInvalidRole):
		resp.BadRequest(c, err.Error())
		return
	case err != nil:
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// validation runs before anything is created
	if err := services.ValidateSignUp(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.SignUp(&req)
	if err != nil {
		resp.BadRequest(c, services.ErrRegistrationFailed.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "user": user})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	a.Auth.SignOut(utils.CurrentToken(c))
	resp.OK(c, gin.H{"signedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.UserByID(utils.CurrentUserID(c))
	if errors.Is(err, services.ErrNotRehydrated) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if err != nil {
		resp.Unauthorized(c, "unknown identity")
		return
	}
	resp.OK(c, user)
}
