package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error half of the response envelope. Every error
// answer has success=false, a client-facing message and a machine code.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError writes err as the standard error envelope. Anything that is
// not an AppError collapses to a generic 500 with no detail leaked.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 {
		// Hide internals from the client regardless of what was wrapped.
		appErr = InternalError(appErr.Err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
