package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/shoppinglist/application/services"
)

// AddProductRequest is the request body for POST /shopping_lists/{id}/products.
type AddProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name AddProductRequest

// PostListProductHandler handles POST /shopping_lists/{id}/products requests.
type PostListProductHandler struct {
	svc *appsvcs.Services
}

// NewPostListProductHandler returns a PostListProductHandler backed by the given services.
func NewPostListProductHandler(svc *appsvcs.Services) *PostListProductHandler {
	return &PostListProductHandler{svc: svc}
}

// Execute adds a catalog product to an open shopping list.
//
//	@Summary		Add product to shopping list
//	@Description	Adds a catalog product to an open shopping list owned by the authenticated user
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Shopping list ID"
//	@Param			request	body		AddProductRequest	true	"Product to add"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping_lists/{id}/products [post]
func (h *PostListProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid shopping list id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddProductRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.List.AddProduct(r.Context(), userID, listID, req.ProductID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{
		Message: "Product successfully added to the shopping list",
	})
}
