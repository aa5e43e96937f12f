// Package auth, as part of the authentication module.
// This file, `handlers.go`, holds the request/response helpers shared by every handler:
// JSON writing, standardized error responses and validated body decoding.
package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	// `validator` checks the `validate:"..."` struct tags on request DTOs.
	"github.com/go-playground/validator/v10"

	"github.com/user/visiontest-go/apperror"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// validate is safe for concurrent use and caches struct metadata, so one instance is shared.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names (`full_name`) instead of Go field names (`FullName`).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WriteJSON serializes `data` to JSON and writes it with the given `status`.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// WriteError uses the apperror system to write standardized error responses.
// Errors that are not *apperror.AppError become a generic 500. Server errors are
// logged with their underlying cause and the request ID; clients only see the message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	if appErr.IsServerError() {
		log.Printf("[%s] %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, appErr)
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}

// DecodeJSON reads the request body into dst and validates it against its
// `validate` tags. Every failure is a ValidationError (422) with field details.
// Unknown fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return apperror.NewValidationError("request body is required", err)
	case errors.As(err, &typeErr):
		return apperror.NewValidationError("invalid request body", err, apperror.FieldError{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperror.NewValidationError("request body is not valid JSON", err)
	case errors.As(err, &maxErr):
		return apperror.NewValidationError("request body is too large", err)
	default:
		return apperror.NewValidationError("invalid request body", err)
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidationError("invalid request body", err)
	}
	details := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperror.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return apperror.NewValidationError("invalid request body", err, details...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
