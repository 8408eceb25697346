package router

import "github.com/gofiber/fiber/v2"

// Router installs a set of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires all route groups and their controller dependencies
func InstallRouter(app *fiber.App) {
	for _, r := range []Router{NewHttpRouter(), NewApiRouter()} {
		r.InstallRouter(app)
	}
}
