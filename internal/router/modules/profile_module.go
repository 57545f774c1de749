package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radenmas/socialite-api/internal/container"
	handlers "github.com/radenmas/socialite-api/internal/interface/http"
	"github.com/radenmas/socialite-api/internal/interface/middleware"
	"github.com/radenmas/socialite-api/pkg/helpers"
)

// ProfileModule exposes the follower graph. All routes require auth.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/profiles")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/:username/follow", m.Handler.Follow)
		auth.DELETE("/:username/follow", m.Handler.Unfollow)
		auth.GET("/:username/followers", m.Handler.Followers)
		auth.GET("/:username/following", m.Handler.Following)
	}
}
