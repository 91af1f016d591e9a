package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	ProductImageUC *usecase.ProductImageUseCase
	GalleryUC      *usecase.GalleryUseCase
	CatalogQueryUC *usecase.CatalogQueryUseCase

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository

	Storage  ImageStorage
	Exporter ProductExporter
	Sheets   SheetGenerator

	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Storefront (público, solo productos publicados)
	storefrontHandler := NewStorefrontHandler(deps.CatalogQueryUC, deps.CategoryUC)
	catalog := api.Group("/catalog")
	catalog.Get("/products", storefrontHandler.ListProducts)
	catalog.Get("/products/:id", storefrontHandler.GetProduct)
	catalog.Get("/categories", storefrontHandler.ListCategories)

	// Galería (lectura pública)
	galleryHandler := NewGalleryHandler(deps.GalleryUC, deps.Storage)
	api.Get("/gallery", galleryHandler.List)

	// Back-office (requiere Bearer Token)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProductRepo, deps.CategoryRepo, deps.Exporter, deps.Sheets)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/export", productHandler.Export)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/sheet", productHandler.Sheet)

	imageHandler := NewProductImageHandler(deps.ProductImageUC, deps.Storage)
	products.Post("/:id/images", imageHandler.Add)
	products.Delete("/:id/images/:imageId", imageHandler.Remove)
	products.Put("/:id/images/:imageId/main", imageHandler.SetMain)

	gallery := admin.Group("/gallery")
	gallery.Post("/", galleryHandler.Add)
	gallery.Put("/:id", galleryHandler.Update)
	gallery.Delete("/:id", galleryHandler.Delete)
}
