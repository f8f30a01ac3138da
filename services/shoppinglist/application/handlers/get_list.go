package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/listkeeper/services/shoppinglist/application/services"
)

// GetListHandler handles GET /shopping_lists/{id} requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute returns one shopping list with its product set.
//
//	@Summary		Get shopping list
//	@Description	Returns a shopping list the authenticated user owns, with its products
//	@Tags			shopping-lists
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Shopping list ID"
//	@Success		200	{object}	ListResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shopping_lists/{id} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.svc.List.Get(r.Context(), userID, listID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
