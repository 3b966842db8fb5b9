package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ewastehub/internal/usecase"
	"ewastehub/pkg/errors"
)

// formFloat reads an optional numeric form field, distinguishing an absent
// key from an explicitly provided value. An explicitly empty value clears the
// stored one; explicit zero overwrites it.
func formFloat(c echo.Context, key string) (usecase.OptionalFloat, error) {
	params, err := c.FormParams()
	if err != nil {
		return usecase.OptionalFloat{}, errors.BadRequest("Invalid form data", err)
	}

	values, ok := params[key]
	if !ok || len(values) == 0 {
		return usecase.OptionalFloat{}, nil
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return usecase.FloatCleared(), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return usecase.OptionalFloat{}, errors.BadRequest(key+" must be a number", nil)
	}

	return usecase.FloatValue(v), nil
}

func formString(c echo.Context, key string) (usecase.OptionalString, error) {
	params, err := c.FormParams()
	if err != nil {
		return usecase.OptionalString{}, errors.BadRequest("Invalid form data", err)
	}

	values, ok := params[key]
	if !ok || len(values) == 0 {
		return usecase.OptionalString{}, nil
	}

	return usecase.StringValue(values[0]), nil
}

func formInt(c echo.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.BadRequest(key+" must be a whole number", nil)
	}

	return v, nil
}

func formFloatValue(c echo.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.BadRequest(key+" must be a number", nil)
	}

	return &v, nil
}
