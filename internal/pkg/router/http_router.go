package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Jacobisaldana/nativoseo-app/app/controllers"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/middleware"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/storage"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// wire the OAuth flow, the credential resolver and media storage
	flow := googleauth.NewFlowManager(googleauth.LoadConfig(), googleauth.NewMemoryStateStore())
	resolver := googleauth.NewResolver(repository.GetGlobalFactory().GetOAuthTokenRepository())
	controllers.InitializeGoogleAuth(flow, resolver)

	if cfg := storage.LoadConfig(); cfg.IsEnabled() {
		client, err := storage.NewClient(cfg)
		if err != nil {
			log.Warnf("media storage disabled: %v", err)
		} else {
			controllers.InitializeMediaController(client)
		}
	}

	app.Get("/", controllers.HandleRoot)

	auth := app.Group("/auth")
	auth.Post("/register", controllers.HandleRegister)
	auth.Post("/login", controllers.HandleLogin)
	auth.Get("/me", middleware.RequireAuth, controllers.HandleMe)

	// Google authorization flow; the -test variants fill the single-user
	// slot and skip app login, mirroring manual testing against a fresh DB
	auth.Get("/google/login", middleware.RequireAuth, controllers.HandleGoogleLogin)
	auth.Get("/google/callback", middleware.RequireAuth, controllers.HandleGoogleCallback)
	auth.Get("/google/login-test", controllers.HandleGoogleLoginTest)
	auth.Get("/google/callback-test", controllers.HandleGoogleCallbackTest)
	app.Get("/save-token", controllers.HandleSaveToken)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
