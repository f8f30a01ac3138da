package handlers

import (
	"net/http"

	"github.com/ghuser/listkeeper/pkg/errhttp"
	"github.com/ghuser/listkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/listkeeper/pkg/validator"
	appsvcs "github.com/ghuser/listkeeper/services/user/application/services"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255" example:"Ada"`
	Email    string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"correct horse battery staple"`
} // @name RegisterRequest

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string       `json:"message" example:"User registered successfully"`
	User    UserResponse `json:"user"`
} // @name RegisterResponse

// PostRegisterHandler handles POST /auth/register requests.
type PostRegisterHandler struct {
	svc *appsvcs.Services
}

// NewPostRegisterHandler returns a PostRegisterHandler backed by the given services.
func NewPostRegisterHandler(svc *appsvcs.Services) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc}
}

// Execute creates a new account.
//
//	@Summary		Register
//	@Description	Creates a new account with an email and password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	RegisterResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    toUserResponse(user),
	})
}
