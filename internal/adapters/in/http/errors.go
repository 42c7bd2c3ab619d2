package http

import (
	"errors"
	"net/http"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses:
//
//	not found            -> 404
//	already claimed      -> 409
//	invalid transition   -> 409
//	wrong actor          -> 403
//	validation failures  -> 400
//
// Everything else is a 500 with a generic message.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, order.ErrOrderAlreadyClaimed):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, order.ErrInvalidStatusTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, commands.ErrActorNotAuthorized),
		errors.Is(err, order.ErrWrongCourier):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, cart.ErrCartIsEmpty),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCustomerNameIsRequired),
		errors.Is(err, commands.ErrStreetIsRequired),
		errors.Is(err, commands.ErrCityIsRequired):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
