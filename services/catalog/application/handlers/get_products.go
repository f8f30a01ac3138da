package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/listkeeper/services/catalog/application/services"
	"github.com/ghuser/listkeeper/services/catalog/domain/repositories"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute returns a paginated page of the catalog.
//
//	@Summary		List products
//	@Description	Returns a paginated slice of the product catalog
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"Page size (max 100)"
//	@Param			offset	query		int	false	"Records to skip"
//	@Success		200		{object}	ProductListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := queryOpts(r)

	products, total, err := h.svc.Product.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ProductListResponse{
		Products: make([]ProductResponse, len(products)),
		Total:    total,
	}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// queryOpts parses limit/offset query params, clamping to sane bounds.
func queryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = min(v, maxPageLimit)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
