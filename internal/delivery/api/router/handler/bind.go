// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"taskhub/internal/delivery/api/response"
	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/validation"

	"github.com/go-viper/mapstructure/v2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bodyBinder reads only the request body; path and query parameters never leak into DTOs.
var bodyBinder = &echo.DefaultBinder{}

// rawBody decodes the JSON body into a generic map so that presence and null
// can be told apart. An empty body yields an empty map.
func rawBody(c echo.Context) (map[string]any, error) {
	var body map[string]any
	if err := bodyBinder.BindBody(c, &body); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return nil, err
		}

		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}
	if body == nil {
		body = map[string]any{}
	}

	return body, nil
}

// bindRequest decodes the body into dst after the required-field check, then
// runs the struct validator. Field names in messages follow the JSON keys.
func bindRequest(c echo.Context, dst any, required ...string) (map[string]any, error) {
	body, err := rawBody(c)
	if err != nil {
		return nil, err
	}

	if len(required) > 0 {
		if err := validation.RequiredFields(body, required...).Err(); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  dst,
		TagName: "json",
	})
	if err != nil {
		return nil, errors.Wrap(err, "build body decoder")
	}
	if err := decoder.Decode(body); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(dst); err != nil {
		return nil, err
	}

	return body, nil
}

// identity returns the caller set by the access gate.
func identity(c echo.Context) (*entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	return id, nil
}

func ok(c echo.Context, data any) error {
	return response.Success(c, http.StatusOK, data)
}
