package handlers

import (
	"net/http"

	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/shoppinglist/application/services"
)

// CreateListRequest is the request body for POST /shopping_lists.
type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255" example:"Weekly"`
} // @name CreateListRequest

// CreateListResponse is returned on successful list creation.
type CreateListResponse struct {
	Message      string       `json:"message" example:"Shopping List created successfully"`
	ShoppingList ListResponse `json:"shopping_list"`
} // @name CreateListResponse

// PostListHandler handles POST /shopping_lists requests.
type PostListHandler struct {
	svc *appsvcs.Services
}

// NewPostListHandler returns a PostListHandler backed by the given services.
func NewPostListHandler(svc *appsvcs.Services) *PostListHandler {
	return &PostListHandler{svc: svc}
}

// Execute creates a new shopping list owned by the caller.
//
//	@Summary		Create shopping list
//	@Description	Creates a new open shopping list owned by the authenticated user
//	@Tags			shopping-lists
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	CreateListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping_lists [post]
func (h *PostListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.Create(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateListResponse{
		Message:      "Shopping List created successfully",
		ShoppingList: toListResponse(list),
	})
}
