package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/utils"
)

// respondError maps service errors to HTTP statuses. Unclassified errors
// become a generic 500 so internal details never reach the client.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		utils.Error(ctx, http.StatusBadRequest, 40000, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.Error(ctx, http.StatusUnauthorized, 40100, "invalid username or password")
	case errors.Is(err, models.ErrForbidden):
		utils.Error(ctx, http.StatusForbidden, 40300, err.Error())
	case errors.Is(err, models.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, 40400, "not found")
	default:
		if utils.Sugar != nil {
			utils.Sugar.Errorw("request failed", "path", ctx.Request.URL.Path, "error", err)
		}
		utils.Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
	}
}
