package http

import (
	"net/http"

	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

type AnalyticsHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewAnalyticsHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// categoryStats
//
//	@Summary	Per-category statistics
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}	CategoryStatsResponse
//	@Router		/analytics/categories [get]
func (h *AnalyticsHandler) categoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalogUsecase.CategoryAnalytics(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryStatsResponse(stats))
}

// topProducts
//
//	@Summary		Top products by value score or rating
//	@Description	by=value ranks by the composite value score; by=rating ranks by rating among products above the review floor
//	@Tags			analytics
//	@Produce		json
//	@Param			by			query		string	false	"Ranking metric: value or rating"
//	@Param			n			query		int		false	"Number of products"
//	@Param			min_reviews	query		int		false	"Review floor for by=rating"
//	@Success		200			{object}	RecommendationsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/analytics/top [get]
func (h *AnalyticsHandler) topProducts(w http.ResponseWriter, r *http.Request) {
	n, err := parsePositiveIntQuery(r, "n", e.ErrStatusBadRequest)
	if err != nil {
		WriteError(w, err)
		return
	}
	minReviews, err := parsePositiveIntQuery(r, "min_reviews", e.ErrStatusBadRequest)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.TopProducts(r.Context(), &usecase.TopReq{
		By:         r.URL.Query().Get("by"),
		N:          n,
		MinReviews: minReviews,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRecommendationsResponse(res))
}

// priceHistogram
//
//	@Summary	Price distribution histogram
//	@Tags		analytics
//	@Produce	json
//	@Param		bins	query		int	false	"Number of fixed-width buckets"
//	@Success	200		{array}		HistogramBinResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/analytics/price-histogram [get]
func (h *AnalyticsHandler) priceHistogram(w http.ResponseWriter, r *http.Request) {
	bins, err := parsePositiveIntQuery(r, "bins", e.ErrInvalidBins)
	if err != nil {
		WriteError(w, err)
		return
	}

	hist, err := h.catalogUsecase.PriceHistogram(r.Context(), bins)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toHistogramResponse(hist))
}

// discountStats
//
//	@Summary		Discount analysis
//	@Description	discount depth histogram over discounted products, mean rating of discounted vs full-price products, and the rating-vs-discount trend
//	@Tags			analytics
//	@Produce		json
//	@Param			bins	query		int	false	"Number of fixed-width buckets"
//	@Success		200		{object}	DiscountStatsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/analytics/discounts [get]
func (h *AnalyticsHandler) discountStats(w http.ResponseWriter, r *http.Request) {
	bins, err := parsePositiveIntQuery(r, "bins", e.ErrInvalidBins)
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := h.catalogUsecase.DiscountAnalytics(r.Context(), bins)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDiscountStatsResponse(stats))
}

// brandStats
//
//	@Summary	Per-brand statistics extracted from product names
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}	BrandStatsResponse
//	@Router		/analytics/brands [get]
func (h *AnalyticsHandler) brandStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalogUsecase.BrandAnalytics(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toBrandStatsResponse(stats))
}

// overview
//
//	@Summary	Catalog overview with the rating-vs-price trend
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	OverviewResponse
//	@Router		/analytics/overview [get]
func (h *AnalyticsHandler) overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.catalogUsecase.Overview(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, OverviewResponse{
		Count:          o.Count,
		AvgPrice:       o.AvgPrice,
		AvgRating:      o.AvgRating,
		TrendSlope:     o.TrendSlope,
		TrendIntercept: o.TrendIntercept,
	})
}
