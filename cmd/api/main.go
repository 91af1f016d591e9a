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
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/vitrina-api/internal/infrastructure/excel"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/vitrina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/uploads"
	httpRouter "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/config"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	store, err := localstore.NewStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de datos")
	}

	storage, err := uploads.NewLocal(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.MaxBytes())
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de subidas")
	}

	categoryRepo := localstore.NewCategoryRepository(store, log)
	productRepo := localstore.NewProductRepository(store, log)
	galleryRepo := localstore.NewGalleryRepository(store, log)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	productImageUC := usecase.NewProductImageUseCase(productRepo)
	galleryUC := usecase.NewGalleryUseCase(galleryRepo)
	catalogQueryUC := usecase.NewCatalogQueryUseCase(productRepo)

	authUC, err := auth.NewAuthUseCase(cfg.Admin.Username, cfg.Admin.Password, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("preparar credencial de administración")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw := swaggerMiddleware(log, "./docs/swagger.json"); mw != nil {
		app.Use(mw)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes subidas, servidas desde disco local.
	app.Static(cfg.Uploads.BaseURL, storage.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		ProductImageUC: productImageUC,
		GalleryUC:      galleryUC,
		CatalogQueryUC: catalogQueryUC,
		ProductRepo:    productRepo,
		CategoryRepo:   categoryRepo,
		Storage:        storage,
		Exporter:       infraexcel.NewProductExporter(),
		Sheets:         infrapdf.NewProductSheetGenerator(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerMiddleware sirve la UI de Swagger solo si la definición existe en
// disco; swagger.New entra en pánico con el archivo ausente, así que sin él
// la aplicación arranca igual, sin /docs.
func swaggerMiddleware(log *logger.Logger, filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("definición swagger ausente, /docs deshabilitado")
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Vitrina API",
	})
}
