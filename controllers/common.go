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

// currentUser resolves the request's identity, responding itself on failure.
func currentUser(c *gin.Context, auth *services.AuthService) (*entity.User, bool) {
	u, err := auth.UserByID(utils.CurrentUserID(c))
	if errors.Is(err, services.ErrNotRehydrated) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}
	if err != nil {
		resp.Unauthorized(c, "unknown identity")
		return nil, false
	}
	return u, true
}

// orderError maps ledger and flow errors onto the response envelope.
func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrStatusConflict),
		errors.Is(err, services.ErrAlreadyAssigned):
		resp.Conflict(c, err.Error())
	default:
		resp.BadRequest(c, err.Error())
	}
}
