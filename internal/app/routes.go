package app

import (
	"github.com/gin-gonic/gin"

	"github.com/wahidu1/portfolio-core/internal/modules/content/achievement"
	"github.com/wahidu1/portfolio-core/internal/modules/content/blog"
	"github.com/wahidu1/portfolio-core/internal/modules/content/contact"
	"github.com/wahidu1/portfolio-core/internal/modules/content/experience"
	"github.com/wahidu1/portfolio-core/internal/modules/content/faq"
	"github.com/wahidu1/portfolio-core/internal/modules/content/skill"
	"github.com/wahidu1/portfolio-core/internal/modules/content/testimonial"
	"github.com/wahidu1/portfolio-core/internal/modules/content/work"
	"github.com/wahidu1/portfolio-core/internal/modules/settings"
	"github.com/wahidu1/portfolio-core/internal/pkg/response"
)

func (a *App) registerRoutes(settingsSvc *settings.Service, scheduler contact.Scheduler) {
	a.engine.HandleMethodNotAllowed = true
	a.engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Resource not found")
	})
	a.engine.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	a.engine.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "pong"})
	})

	api := a.engine.Group("/api/v1")

	skill.NewHandler(a.db).Register(api)
	work.NewHandler(work.NewService(a.db)).Register(api)
	achievement.NewHandler(a.db).Register(api)
	experience.NewHandler(a.db).Register(api)
	testimonial.NewHandler(a.db).Register(api)
	faq.NewHandler(a.db).Register(api)
	blog.NewHandler(blog.NewService(a.db)).Register(api)
	contact.NewHandler(a.db, scheduler, a.logger).Register(api)
	settings.NewHandler(settingsSvc).Register(api)
}
