package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/catalog/application/services"
)

// UpdateProductRequest is the request body for PUT /products/{id}.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255" example:"Oat milk"`
	Price       int64  `json:"price" validate:"min=0" example:"379"`
	Quantity    int    `json:"quantity" validate:"min=0" example:"8"`
	Description string `json:"description" validate:"omitempty,max=255" example:"1 liter carton"`
} // @name UpdateProductRequest

// UpdateProductResponse is returned on successful product update.
type UpdateProductResponse struct {
	Message string          `json:"message" example:"Product updated successfully"`
	Product ProductResponse `json:"product"`
} // @name UpdateProductResponse

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute replaces a product's attributes.
//
//	@Summary		Update product
//	@Description	Replaces the attributes of an existing catalog product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Product ID"
//	@Param			request	body		UpdateProductRequest	true	"Product update request"
//	@Success		200		{object}	UpdateProductResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Update(r.Context(), id, req.Name, req.Price, req.Quantity, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UpdateProductResponse{
		Message: "Product updated successfully",
		Product: toProductResponse(product),
	})
}
