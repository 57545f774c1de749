package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radenmas/socialite-api/internal/container"
	handlers "github.com/radenmas/socialite-api/internal/interface/http"
	"github.com/radenmas/socialite-api/internal/interface/middleware"
	"github.com/radenmas/socialite-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and the auth middleware into routes.
// Public: POST /api/users, POST /api/users/login, PUT /api/user (token
// verified inside the service).
// Protected: GET /api/user, GET /api/users/search.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)                     // 10 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)
	rg.PUT("/user", m.Handler.UpdateProfile)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/user", m.Handler.GetProfile)
		auth.GET("/users/search", m.Handler.Search)
	}
}
