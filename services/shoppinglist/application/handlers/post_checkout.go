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

// PostCheckoutHandler handles POST /shopping_lists/{id}/checkout requests.
type PostCheckoutHandler struct {
	svc *appsvcs.Services
}

// NewPostCheckoutHandler returns a PostCheckoutHandler backed by the given services.
func NewPostCheckoutHandler(svc *appsvcs.Services) *PostCheckoutHandler {
	return &PostCheckoutHandler{svc: svc}
}

// Execute closes a shopping list. The transition is one-way; a closed list
// rejects further checkouts and membership changes.
//
//	@Summary		Checkout shopping list
//	@Description	Closes an open shopping list owned by the authenticated user
//	@Tags			shopping-lists
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Shopping list ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shopping_lists/{id}/checkout [post]
func (h *PostCheckoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.svc.List.Checkout(r.Context(), userID, listID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{
		Message: "Shopping List successfully closed",
	})
}
