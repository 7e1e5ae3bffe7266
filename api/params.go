package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/pivotal-cf/cred-audit/audit"
)

func page(r *http.Request) (audit.Page, error) {
	limit, err := intParam(r, "limit")
	if err != nil {
		return audit.Page{}, err
	}

	offset, err := intParam(r, "offset")
	if err != nil {
		return audit.Page{}, err
	}

	return audit.Page{Limit: limit, Offset: offset}.Normalize(), nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, badRequest("%s must be a non-negative integer", name)
	}

	return value, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest("%s must be a boolean", name)
	}

	return value, nil
}

// decode accepts an empty body as the zero request.
func decode(r *http.Request, v interface{}) error {
	err := render.DecodeJSON(r.Body, v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return badRequest("malformed request body")
}
