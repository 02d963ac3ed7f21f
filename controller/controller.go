package controller

import (
	"errors"
	"net/http"

	"github.com/kavyansh10/GraminSetu/middleware"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// branchOf and officerOf read the context the auth middleware stamped.
func branchOf(ctx *gin.Context) string {
	return ctx.GetString(middleware.CtxBranch)
}

func officerOf(ctx *gin.Context) string {
	return ctx.GetString(middleware.CtxOfficerID)
}

// statusFor maps service errors to HTTP statuses: validation failures are
// the client's fault, missing rows are 404, the rest is on us.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}
