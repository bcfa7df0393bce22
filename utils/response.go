package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError maps the typed service errors onto HTTP status codes.
// Anything unrecognized is treated as a server fault.
func RespondAppError(c *gin.Context, err error) {
	var (
		notFound     *NotFoundError
		conflict     *ConflictError
		invalidState *InvalidStateError
		external     *ExternalServiceError
	)

	switch {
	case errors.As(err, &notFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &conflict):
		RespondError(c, http.StatusConflict, err)
	case errors.As(err, &invalidState):
		RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.As(err, &external):
		RespondError(c, http.StatusPaymentRequired, err)
	default:
		ErrorLogger.Printf("Internal error: %v", err)
		RespondError(c, http.StatusInternalServerError, err)
	}
}
