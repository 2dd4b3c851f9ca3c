// Package apierror defines the error taxonomy surfaced by the API and the
// translation of storage-layer failures into it.
package apierror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrUnauthorized means the caller is not authenticated.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the caller is authenticated but not allowed.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrMethodNotAllowed is returned for unsupported methods, notably PUT.
	ErrMethodNotAllowed = errors.New("method not allowed, use PATCH for updates")
)

// NotFoundError names the resource that could not be resolved.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError is a field-attributed request validation failure.
// Field may be empty for object-level failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// Unique constraint names from database/migrations, keyed to the message a
// caller should see. Enforcing uniqueness here (and not only with
// existence pre-checks) is what closes the check-then-write race.
var constraintMessages = map[string]*ValidationError{
	"uq_users_username":       {Field: "username", Message: "username already in use"},
	"uq_users_email":          {Field: "email", Message: "email already in use"},
	"uq_categories_slug":      {Field: "slug", Message: "slug already in use"},
	"uq_genres_slug":          {Field: "slug", Message: "slug already in use"},
	"uq_reviews_title_author": {Message: "you have already reviewed this title"},
}

// TranslateDB converts storage errors into taxonomy errors. Record-not-found
// becomes a NotFoundError for the given resource; unique violations become
// field-attributed ValidationErrors. Anything else passes through.
func TranslateDB(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if ve, ok := constraintMessages[pgErr.ConstraintName]; ok {
			return ve
		}
		return Validation("", "duplicate value")
	}
	return err
}

// HTTPStatus maps a taxonomy error to its response status.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Body renders the response payload for a taxonomy error. Field-attributed
// validation errors keep the DRF-style {"field": ["message"]} shape.
func Body(err error) map[string]any {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		return map[string]any{ve.Field: []string{ve.Message}}
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return map[string]any{"error": "internal server error"}
	}
	return map[string]any{"error": err.Error()}
}
