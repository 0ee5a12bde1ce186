package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/rasan-admin-api/internal/application/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/application/auth"
	"github.com/jhoicas/rasan-admin-api/internal/application/catalog"
	"github.com/jhoicas/rasan-admin-api/internal/application/orders"
	"github.com/jhoicas/rasan-admin-api/internal/application/registry"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
	"github.com/jhoicas/rasan-admin-api/internal/infrastructure/appwrite"
	inframetrics "github.com/jhoicas/rasan-admin-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/rasan-admin-api/internal/infrastructure/pdf"
	infraredis "github.com/jhoicas/rasan-admin-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/rasan-admin-api/internal/interfaces/http"
	"github.com/jhoicas/rasan-admin-api/pkg/config"
	"github.com/jhoicas/rasan-admin-api/pkg/logger"
)

// sessionIdleTimeout tiempo sin uso tras el cual se libera el estado por sesión (dashboard, listado).
const sessionIdleTimeout = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	loc := cfg.App.Location()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	rdb, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()
	sessions := infraredis.NewSessionStore(rdb)

	metrics := inframetrics.New("rasan_admin")

	// Appwrite: un cliente con API key compartido por todos los adaptadores
	client := appwrite.NewClient(cfg.Appwrite).WithObserver(metrics)
	tables := appwrite.NewTables(client, cfg.Appwrite.DatabaseID)
	files := appwrite.NewBucketStorage(client, cfg.Appwrite.BucketID)

	orderRepo := appwrite.NewOrderRepository(tables, cfg.Appwrite.OrderTableID)
	productRepo := appwrite.NewProductRepository(tables, cfg.Appwrite.ProductTableID, log.Component("products"))
	categoryRepo := appwrite.NewCategoryRepository(tables, cfg.Appwrite.ProductCategoryTableID)
	headerRepo := appwrite.NewHeaderCategoryRepository(tables, cfg.Appwrite.HeaderCategoryTableID)
	bodyRepo := appwrite.NewBodyCategoryRepository(tables, cfg.Appwrite.BodyCategoryTableID)
	carouselRepo := appwrite.NewCarouselRepository(tables, cfg.Appwrite.CarouselTableID, log.Component("carousel"))

	fetcher := orders.NewFetcher(orderRepo, log.Component("orders"), metrics)
	dashboardUC := appanalytics.NewDashboardUseCase(fetcher, infrapdf.NewMarotoReportGenerator(cfg.App.Name), loc)

	pageSize := cfg.Catalog.PageSize
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	dashboards := registry.New(func() *appanalytics.FilterController {
		return appanalytics.NewFilterController(fetcher, loc, log.Component("dashboard"), metrics)
	})
	feeds := registry.New(func() *catalog.ProductLister {
		return catalog.NewProductLister(productRepo, files, pageSize, log.Component("product_feed"), metrics)
	})

	authUC := auth.NewAuthUseCase(appwrite.NewAccounts(client), sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AdminLabel, log.Component("auth"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // imágenes de productos
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Rasan Admin API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		Guard:            authUC.Guard(),
		ProductUC:        usecase.NewProductUseCase(productRepo, files, log.Component("products")),
		CategoryUC:       usecase.NewCategoryUseCase(categoryRepo, files, log.Component("categories")),
		HeaderCategoryUC: usecase.NewHeaderCategoryUseCase(headerRepo, categoryRepo),
		BodyCategoryUC:   usecase.NewBodyCategoryUseCase(bodyRepo),
		CarouselUC:       usecase.NewCarouselUseCase(carouselRepo, files, log.Component("carousel")),
		NotificationUC:   usecase.NewNotificationUseCase(appwrite.NewPushNotifier(client, cfg.Appwrite.NotificationFunctionID)),
		DashboardUC:      dashboardUC,
		Dashboards:       dashboards,
		ProductFeeds:     feeds,
	})

	// Limpieza periódica del estado de sesiones inactivas
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n := dashboards.Prune(sessionIdleTimeout) + feeds.Prune(sessionIdleTimeout)
				if n > 0 {
					log.Debug().Int("removed", n).Msg("estado de sesiones inactivas liberado")
				}
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
