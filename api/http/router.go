package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/handlers"
)

// Handlers groups every HTTP handler registered by Register.
type Handlers struct {
	Health *handlers.HealthHandler
	Resume *handlers.ResumeHandler
	Match  *handlers.MatchHandler
	Skills *handlers.SkillHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/resumes/parse", h.Resume.Parse)

	v1.Post("/match/score", h.Match.Score)
	v1.Get("/history", h.Match.History)

	sk := v1.Group("/skills")
	sk.Get("/", h.Skills.List)
	sk.Put("/", h.Skills.Upsert)
	sk.Post("/reload", h.Skills.Reload)
	sk.Delete("/:name", h.Skills.Delete)
}
