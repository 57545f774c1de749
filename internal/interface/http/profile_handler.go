package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/radenmas/socialite-api/internal/application"
	"github.com/radenmas/socialite-api/pkg/response"
)

// ProfileHandler serves the follower graph around public profiles.
type ProfileHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewProfileHandler(svc *userapp.Service, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// Follow POST /api/profiles/:username/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	uid := c.GetString("userID")
	view, err := h.Svc.Follow(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": view}, "")
}

// Unfollow DELETE /api/profiles/:username/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	uid := c.GetString("userID")
	view, err := h.Svc.Unfollow(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": view}, "")
}

// Followers GET /api/profiles/:username/followers
func (h *ProfileHandler) Followers(c *gin.Context) {
	list, err := h.Svc.FollowersOf(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"followers": list}, "")
}

// Following GET /api/profiles/:username/following
func (h *ProfileHandler) Following(c *gin.Context) {
	list, err := h.Svc.FollowingOf(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"following": list}, "")
}
