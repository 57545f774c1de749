package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/radenmas/socialite-api/internal/application"
	"github.com/radenmas/socialite-api/pkg/response"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req userapp.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailure(c, []string{"invalid json payload"})
		return
	}

	view, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": view}, "")
}

// Login POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	// a malformed body is treated the same as absent credentials
	_ = c.ShouldBindJSON(&req)

	view, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": view}, "")
}

// UpdateProfile PUT /api/user
// Accepts a multipart form with email, username, bio and an optional image
// file. The access token travels in the X-Access-Token header and is verified
// by the service, not by route middleware.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	token := c.GetHeader("X-Access-Token")

	in := userapp.UpdateProfileInput{
		Email:    c.PostForm("email"),
		Username: c.PostForm("username"),
		Bio:      c.PostForm("bio"),
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			response.Failure(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer func() { _ = f.Close() }()
		in.Image = f
		in.ImageName = fh.Filename
		in.ImageContentType = fh.Header.Get("Content-Type")
	}

	view, err := h.Svc.UpdateProfile(c.Request.Context(), token, in)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": view}, "update successful")
}

// GetProfile GET /api/user (authenticated)
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	view, err := h.Svc.GetProfile(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": view}, "")
}

// Search GET /api/users/search?q=... (authenticated)
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Failure(c, http.StatusBadRequest, "missing query")
		return
	}
	res, err := h.Svc.SearchUsers(c.Request.Context(), q, 10)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("user search failed")
		}
		response.Failure(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": res}, "")
}
