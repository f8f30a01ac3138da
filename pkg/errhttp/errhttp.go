// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/listkeeper/pkg/httpx"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	listdomain "github.com/ghuser/listkeeper/services/shoppinglist/domain"
	userdomain "github.com/ghuser/listkeeper/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, listdomain.ErrListNotFound),
		errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, listdomain.ErrNotOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, listdomain.ErrListClosed),
		errors.Is(err, listdomain.ErrListAlreadyClosed),
		errors.Is(err, listdomain.ErrProductAlreadyOnList),
		errors.Is(err, listdomain.ErrProductNotOnList):
		return http.StatusBadRequest // 400 — caller must change the request
	case errors.Is(err, userdomain.ErrEmailTaken):
		return http.StatusConflict // 409
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, listdomain.ErrInvalidListName),
		errors.Is(err, catalogdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
