package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blog-api/app/domain"
	apperrors "blog-api/app/utils/errors"
	"blog-api/app/utils/validator"
)

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DetailedErrorResponse carries a machine-readable error code
type DetailedErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Field   string `json:"field,omitempty"`
}

// ValidationErrorResponse carries per-field validation messages
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Errors map[string]string `json:"errors"`
}

// SuccessResponse is the generic success body for operations without
// a resource payload
type SuccessResponse struct {
	Message string `json:"message"`
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid ID format")
	}
	return uint(id), nil
}

// handleValidationError maps a c.Validate failure to a 400 response
// with a field-to-message map
func handleValidationError(c echo.Context, err error) error {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Code:   string(apperrors.ErrCodeValidationFailed),
			Errors: valErr.Errors,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "validation failed",
	})
}

// handleDomainError maps domain errors to HTTP responses. Every
// handler funnels usecase failures through here so the error contract
// stays uniform across both resources.
func handleDomainError(c echo.Context, logger *slog.Logger, err error) error {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, DetailedErrorResponse{
			Error:   "Validation error",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: valErr.Message,
			Field:   valErr.Field,
		})
	}

	switch {
	case errors.Is(err, domain.ErrAuthorNotFound):
		return c.JSON(http.StatusNotFound, DetailedErrorResponse{
			Error:   "Author not found",
			Code:    string(apperrors.ErrCodeAuthorNotFound),
			Details: "No author exists with the requested ID.",
		})
	case errors.Is(err, domain.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, DetailedErrorResponse{
			Error:   "Post not found",
			Code:    string(apperrors.ErrCodePostNotFound),
			Details: "No post exists with the requested ID.",
		})
	case errors.Is(err, domain.ErrAuthorEmailExists):
		return c.JSON(http.StatusConflict, DetailedErrorResponse{
			Error:   "Email already in use",
			Code:    string(apperrors.ErrCodeEmailExists),
			Details: "An author with this email address already exists.",
		})
	case errors.Is(err, domain.ErrInvalidAuthorReference):
		return c.JSON(http.StatusUnprocessableEntity, DetailedErrorResponse{
			Error:   "Invalid author reference",
			Code:    string(apperrors.ErrCodeInvalidAuthorReference),
			Details: "The referenced author does not exist.",
		})
	}

	logger.Error("unhandled domain error", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
	})
}
