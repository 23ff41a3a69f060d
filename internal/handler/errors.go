package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/people-registry/internal/domain"
	"github.com/pkordes/people-registry/internal/handler/gen"
)

const codeValidation = "validation_error"

// StatusFor maps an error returned by the service layer to its HTTP status.
// nil maps to 200. Anything outside the domain taxonomy is a 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// StrictOptions returns the request and response error hooks for the
// generated strict handler.
//
// A body that cannot be decoded is a 422 with a validation body, unless it
// was cut off by http.MaxBytesReader, which is a 413. Errors
// returned from a handler are logged with the request id and written as an
// empty response with the status from StatusFor; their text never reaches
// the client.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	if log == nil {
		log = slog.Default()
	}
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.DebugContext(r.Context(), "rejected request body",
				"request_id", chimiddleware.GetReqID(r.Context()),
				"error", err,
			)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("", "request body must be a JSON object with nickname, name, birth_date and an optional stack"))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			status := StatusFor(err)
			level := slog.LevelError
			if status < http.StatusInternalServerError {
				level = slog.LevelInfo
			}
			log.Log(r.Context(), level, "request failed",
				"request_id", chimiddleware.GetReqID(r.Context()),
				"status", status,
				"error", err,
			)
			w.WriteHeader(status)
		},
	}
}

// ParamErrorHandler returns the router's hook for query and path parameters
// that fail to bind, such as a repeated ?t=. They are 422s naming the
// parameter; the binder's text is only logged.
func ParamErrorHandler(log *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.DebugContext(r.Context(), "rejected request parameter",
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		field := ""
		var paramErr *gen.InvalidParamFormatError
		if errors.As(err, &paramErr) {
			field = paramErr.ParamName
		}
		message := "invalid parameter"
		if field != "" {
			message = field + " must be a single well-formed value"
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(field, message))
	}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The field and message come from the wrapped *domain.ValidationError.
func validationBody(err error) gen.ErrorResponse {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return requestBody(verr.Field, verr.Detail())
	}
	return requestBody("", "invalid request")
}

// requestBody returns an ErrorResponse for a request rejected before or by
// the service layer. An empty field is omitted from the body.
func requestBody(field, message string) gen.ErrorResponse {
	detail := gen.ErrorDetail{Code: codeValidation, Message: message}
	if field != "" {
		detail.Field = &field
	}
	return gen.ErrorResponse{Error: detail}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
