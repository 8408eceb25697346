package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/Jacobisaldana/nativoseo-app/app/controllers"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/middleware"
)

type ApiRouter struct {
}

// InstallRouter registers the Business Profile facade routes. They are rate
// limited as a group; the Google credential itself is resolved per request
// by the controllers, so the -test single-user mode works without app login.
func (h ApiRouter) InstallRouter(app *fiber.App) {
	lim := limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	})

	accounts := app.Group("/accounts", lim)
	accounts.Get("/", controllers.HandleListAccounts)
	accounts.Get("/:accountID/locations", controllers.HandleListLocations)

	active := app.Group("/locations/active", lim, middleware.RequireAuth)
	active.Get("/", controllers.HandleListActiveLocations)
	active.Post("/", controllers.HandleActivateLocation)
	active.Delete("/:locationID", controllers.HandleDeactivateLocation)

	locations := app.Group("/locations/:accountID/:locationID", lim)
	locations.Get("/reviews", controllers.HandleListReviews)
	locations.Put("/reviews/:reviewID/reply", controllers.HandleReplyReview)
	locations.Get("/posts", controllers.HandleListPosts)
	locations.Post("/posts", controllers.HandleCreatePost)
	locations.Get("/media", controllers.HandleListMedia)
	locations.Post("/media/upload", controllers.HandleUploadMedia)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
