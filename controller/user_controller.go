package controller

import (
	"log"
	"net/http"

	model "github.com/kavyansh10/GraminSetu/models"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{service: s}
}

// UpsertProfile saves the acting officer's profile. This runs under auth
// only, not branch resolution: a first-time officer has no branch yet.
func (c *UserController) UpsertProfile(ctx *gin.Context) {
	var req struct {
		DisplayName string `json:"display_name" binding:"required"`
		Role        string `json:"role" binding:"required"`
		Branch      string `json:"branch"`
		Email       string `json:"email" binding:"omitempty,email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload", "details": err.Error()})
		return
	}
	profile, err := c.service.Upsert(officerOf(ctx), service.UserProfileInput{
		DisplayName: req.DisplayName,
		Role:        model.UserRole(req.Role),
		Branch:      req.Branch,
		Email:       req.Email,
	})
	if err != nil {
		log.Printf("[UpsertProfile] Error saving profile: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully", "profile": profile})
}

// GetProfile returns the acting officer's own profile.
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.service.Get(officerOf(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}
