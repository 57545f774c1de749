package router

import (
	userapp "github.com/radenmas/socialite-api/internal/application"
	"github.com/radenmas/socialite-api/internal/container"
	pginfra "github.com/radenmas/socialite-api/internal/infrastructure/postgres"
	handlers "github.com/radenmas/socialite-api/internal/interface/http"
	"github.com/radenmas/socialite-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	followerRepo := pginfra.NewFollowerRepository(container.GetPGPool())

	uploader := &userapp.GCSUploader{Client: container.GetGCS(), Bucket: cfg.GCSBucket}

	service := userapp.NewService(
		userRepo,
		followerRepo,
		container.GetJWT(),
		uploader,
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		cfg.ESUsersIndex,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)

	userHandler := handlers.NewUserHandler(service, container.GetLogger())
	profileHandler := handlers.NewProfileHandler(service, container.GetLogger())

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewProfileModule(profileHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
