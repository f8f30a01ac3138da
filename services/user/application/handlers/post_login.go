package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/user/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
} // @name LoginRequest

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  UserResponse  `json:"user"`
	Token TokenResponse `json:"token"`
} // @name LoginResponse

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc *appsvcs.Services
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services.
func NewPostLoginHandler(svc *appsvcs.Services) *PostLoginHandler {
	return &PostLoginHandler{svc: svc}
}

// Execute authenticates an email/password pair and issues a bearer token.
//
//	@Summary		Login
//	@Description	Verifies credentials and returns an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, token, expiresAt, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{
		User: toUserResponse(user),
		Token: TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		},
	})
}
