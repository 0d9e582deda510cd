package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		List catalog products
//	@Description	Returns catalog products, optionally filtered by category and price range
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Category name"
//	@Param			min_price	query		number	false	"Minimum price in dollars"
//	@Param			max_price	query		number	false	"Maximum price in dollars"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	products, err := h.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	WriteSuccess(w, http.StatusOK, out)
}

// getProduct
//
//	@Summary		Get one product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(*product))
}

// listCategories
//
//	@Summary	List catalog categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}

	WriteSuccess(w, http.StatusOK, out)
}

// recommendForProduct
//
//	@Summary		Recommend similar products
//	@Description	Returns the top K products most similar in features and value to the reference product
//	@Tags			recommendations
//	@Produce		json
//	@Param			id	path		int	true	"Reference product ID"
//	@Param			k	query		int	false	"Number of recommendations"
//	@Success		200	{object}	RecommendationsResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id}/recommendations [get]
func (h *CatalogHandler) recommendForProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	k, err := parsePositiveIntQuery(r, "k", e.ErrInvalidTopK)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.Recommend(r.Context(), &usecase.RecommendReq{ProductID: id, K: k})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRecommendationsResponse(res))
}

// recommendForProfile
//
//	@Summary		Recommend products for a target profile
//	@Description	Ranks the whole catalog against a synthetic price/rating/discount/category profile
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		ProfileRequest	true	"Target profile"
//	@Success		200		{object}	RecommendationsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/recommendations/profile [post]
func (h *CatalogHandler) recommendForProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.Price < 0 {
		WriteError(w, e.ErrInvalidPrice)
		return
	}

	res, err := h.catalogUsecase.RecommendProfile(r.Context(), &usecase.ProfileRecommendReq{
		PriceCents: int64(math.Round(req.Price * 100)),
		Rating:     req.Rating,
		Discount:   req.Discount,
		Category:   req.Category,
		K:          req.K,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRecommendationsResponse(res))
}

func parseProductFilter(r *http.Request) (*usecase.ProductFilter, error) {
	filter := &usecase.ProductFilter{
		Category: r.URL.Query().Get("category"),
	}

	if v := r.URL.Query().Get("min_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return nil, err
		}
		filter.MinPriceCents = &cents
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return nil, err
		}
		filter.MaxPriceCents = &cents
	}

	return filter, nil
}
