package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
)

const internalErrorMessage = "internal server error"

// handleError writes err as a JSON error body. Errors that are not
// client-facing are reduced to a generic 500.
func handleError(c *gin.Context, err error) {
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, messageResponse{Message: apiErr.Message})
		return
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, messageResponse{Message: internalErrorMessage})
}

// handleBindError maps request decoding failures to 400, or 413 when the
// body exceeded the size limit.
func handleBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, messageResponse{Message: "request body too large"})
		return
	}

	handleError(c, apiErrors.NewErrValidation(bindErrorMessage(err)))
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return fe.Field() + " must be a valid email address"
		case "min":
			return fe.Field() + " must be at least " + fe.Param()
		case "max":
			return fe.Field() + " must be at most " + fe.Param()
		}
		return fe.Field() + " is invalid"
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &syntaxErr):
		return "request body is not valid JSON"
	case errors.As(err, &typeErr):
		return typeErr.Field + " has the wrong type"
	}
	return "invalid request"
}
