package handlers

import (
	"net/http"

	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/listkeeper/services/user/application/services"
)

// PostLogoutHandler handles POST /auth/logout requests.
type PostLogoutHandler struct {
	svc *appsvcs.Services
}

// NewPostLogoutHandler returns a PostLogoutHandler backed by the given services.
func NewPostLogoutHandler(svc *appsvcs.Services) *PostLogoutHandler {
	return &PostLogoutHandler{svc: svc}
}

// Execute revokes the presented access token.
//
//	@Summary		Logout
//	@Description	Revokes the access token used to authenticate this request
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	MessageResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.svc.Auth.Logout(r.Context(), claims); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}
