package handlers

import (
	"net/http"

	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/listkeeper/services/shoppinglist/application/services"
)

// GetListsHandler handles GET /shopping_lists requests.
type GetListsHandler struct {
	svc *appsvcs.Services
}

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services) *GetListsHandler {
	return &GetListsHandler{svc: svc}
}

// Execute lists the caller's shopping lists.
//
//	@Summary		List shopping lists
//	@Description	Returns all shopping lists owned by the authenticated user
//	@Tags			shopping-lists
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		ListResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/shopping_lists [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	lists, err := h.svc.List.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ListResponse, len(lists))
	for i, list := range lists {
		out[i] = toListResponse(list)
	}
	httpx.JSON(w, http.StatusOK, out)
}
