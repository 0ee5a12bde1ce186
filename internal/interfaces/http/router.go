package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/rasan-admin-api/internal/application/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/application/auth"
	"github.com/jhoicas/rasan-admin-api/internal/application/catalog"
	"github.com/jhoicas/rasan-admin-api/internal/application/registry"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	Guard            sessionValidator
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	HeaderCategoryUC *usecase.HeaderCategoryUseCase
	BodyCategoryUC   *usecase.BodyCategoryUseCase
	CarouselUC       *usecase.CarouselUseCase
	NotificationUC   *usecase.NotificationUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	Dashboards       *registry.Registry[*appanalytics.FilterController]
	ProductFeeds     *registry.Registry[*catalog.ProductLister]
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, func(sessionID string) {
		deps.Dashboards.Remove(sessionID)
		deps.ProductFeeds.Remove(sessionID)
	})
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.Guard))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Products: el listado incremental va antes de /:id
	products := protected.Group("/products")
	feedHandler := NewProductFeedHandler(deps.ProductFeeds)
	products.Get("/feed", feedHandler.Get)
	products.Post("/feed/more", feedHandler.More)
	products.Post("/feed/search", feedHandler.Search)
	products.Delete("/feed/:id", feedHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.HeaderCategoryUC, deps.BodyCategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Post("/:id/toggle", categoryHandler.Toggle)
	categories.Delete("/:id", categoryHandler.Delete)

	headers := protected.Group("/header-categories")
	headers.Get("/", categoryHandler.ListHeaders)
	headers.Get("/available", categoryHandler.AvailableHeaders)
	headers.Post("/", categoryHandler.CreateHeader)
	headers.Patch("/:id/active", categoryHandler.SetHeaderActive)
	headers.Delete("/:id", categoryHandler.DeleteHeader)

	bodies := protected.Group("/body-categories")
	bodies.Get("/", categoryHandler.ListBodies)
	bodies.Put("/:id/categories", categoryHandler.SetBodyCategories)

	carouselHandler := NewCarouselHandler(deps.CarouselUC, deps.NotificationUC)
	carousel := protected.Group("/carousel")
	carousel.Get("/", carouselHandler.List)
	carousel.Post("/", carouselHandler.Upload)
	carousel.Delete("/:id", carouselHandler.Delete)
	protected.Post("/notifications", carouselHandler.Notify)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Dashboards)
	dash := protected.Group("/dashboard")
	dash.Get("/summary", dashboardHandler.GetSummary)
	dash.Get("/state", dashboardHandler.GetState)
	dash.Get("/report.pdf", dashboardHandler.Report)
	dash.Post("/refresh", dashboardHandler.Refresh)
	dash.Post("/filter/today", dashboardHandler.SelectToday)
	dash.Post("/filter/all", dashboardHandler.SelectAllTime)
	dash.Post("/filter/custom-range", dashboardHandler.SetCustomRange)
	dash.Post("/filter/custom/apply", dashboardHandler.ApplyCustom)
	dash.Post("/filter/status", dashboardHandler.SetStatus)
}
