package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data with a 200 status.
func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus marshals data before touching the response so a marshal
// failure can still become a clean 500.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteNotFound writes the "Not Found" page bag.
func (r Responder) WriteNotFound(w http.ResponseWriter, req *http.Request) {
	r.WriteJSONStatus(w, http.StatusNotFound, ErrorResponse{page: newPage(req, "Not Found")})
}

// WriteError maps err to a page bag. Not-found is an expected outcome and is
// not logged; server-side failures are logged with their full cause chain and
// answered with a generic "Server Error" bag.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	if errs.IsNotFound(err) {
		r.WriteNotFound(w, req)
		return
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause("unclassified failure", err)
	}

	status := apiErr.StatusCode
	if status >= http.StatusInternalServerError {
		r.logger.Error().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("requestID", ctxGetRequestID(req.Context())).
			Int("status", status).
			Str("error", apiErr.GetFullError()).
			Msg("request failed")

		r.WriteJSONStatus(w, status, ErrorResponse{page: newPage(req, "Server Error")})
		return
	}

	response := ErrorResponse{
		page:    newPage(req, http.StatusText(status)),
		Error:   err.Error(),
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}
	r.WriteJSONStatus(w, status, response)
}
