package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/shoplens/go-backend/docs" // generated swagger spec
	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC) {
	r.router.Use(RequestLogger(r.logger))

	r.router.Get("/", dashboardHandler())

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		analyticsHandler := NewAnalyticsHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)
		registerAnalyticsRoutes(v1, analyticsHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Get("/{id}/recommendations", h.recommendForProduct)
	})
	router.Get("/categories", h.listCategories)
	router.Post("/recommendations/profile", h.recommendForProfile)
}

func registerAnalyticsRoutes(router chi.Router, h *AnalyticsHandler) {
	router.Route("/analytics", func(an chi.Router) {
		an.Get("/categories", h.categoryStats)
		an.Get("/top", h.topProducts)
		an.Get("/price-histogram", h.priceHistogram)
		an.Get("/discounts", h.discountStats)
		an.Get("/brands", h.brandStats)
		an.Get("/overview", h.overview)
	})
}
