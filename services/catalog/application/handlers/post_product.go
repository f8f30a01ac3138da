package handlers

import (
	"net/http"

	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/catalog/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255" example:"Oat milk"`
	Price       int64  `json:"price" validate:"min=0" example:"349"`
	Quantity    int    `json:"quantity" validate:"min=0" example:"12"`
	Description string `json:"description" validate:"omitempty,max=255" example:"1 liter carton"`
} // @name CreateProductRequest

// CreateProductResponse is returned on successful product creation.
type CreateProductResponse struct {
	Message string          `json:"message" example:"Product created successfully"`
	Product ProductResponse `json:"product"`
} // @name CreateProductResponse

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute adds a new product to the catalog.
//
//	@Summary		Create product
//	@Description	Adds a new product to the shared catalog
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	CreateProductResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), req.Name, req.Price, req.Quantity, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateProductResponse{
		Message: "Product created successfully",
		Product: toProductResponse(product),
	})
}
