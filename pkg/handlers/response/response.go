// Package response writes JSON bodies and maps ledger errors onto HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Status maps a ledger error code onto an HTTP status.
func Status(code ledger.Code) int {
	switch code {
	case ledger.CodeNotFound:
		return http.StatusNotFound
	case ledger.CodeInsufficientBalance, ledger.CodeDailyLimitExceeded, ledger.CodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ledger.CodeInvalidLimit, ledger.CodeInvalidAmount, ledger.CodeInvalidInput:
		return http.StatusBadRequest
	case ledger.CodeAlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as an api.Error. Errors that are not ledger errors become a 500
// and are logged; their text is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var lerr *ledger.Error
	if !errors.As(err, &lerr) {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, api.Error{Code: "Internal", Message: "Internal server error"})
		return
	}
	JSON(w, Status(lerr.Code), api.Error{Code: string(lerr.Code), Message: lerr.Message, Details: lerr.Details})
}

// BadRequest reports a malformed request.
func BadRequest(w http.ResponseWriter, format string, args ...interface{}) {
	JSON(w, http.StatusBadRequest, api.Error{Code: string(ledger.CodeInvalidInput), Message: fmt.Sprintf(format, args...)})
}

// Decode reads the JSON request body into dest, writing a 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		BadRequest(w, "Invalid request body: %v", err)
		return false
	}
	return true
}

// DecodeOptional is Decode for bodies that may be empty.
func DecodeOptional(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(w, "Invalid request body: %v", err)
		return false
	}
	return true
}

// PathParam binds the named chi path parameter into dest, writing a 400 on failure.
func PathParam(w http.ResponseWriter, r *http.Request, name string, dest interface{}) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		BadRequest(w, "Invalid format for parameter %s: %v", name, err)
		return false
	}
	return true
}

// QueryParam binds an optional query parameter, writing a 400 on failure.
// dest points to a pointer, which stays nil when the parameter is absent.
func QueryParam(w http.ResponseWriter, r *http.Request, name string, dest interface{}) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		BadRequest(w, "Invalid format for parameter %s: %v", name, err)
		return false
	}
	return true
}
