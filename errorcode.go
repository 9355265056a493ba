package main

import (
	"github.com/gin-gonic/gin"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "dataset is still loading",
		1001: "dataset failed to load",

		1010: "invalid parameters",
		1011: "attribute index out of range",
		1012: "unknown step direction",
		1013: "unknown base map",
		1014: "unknown marker",
	}

	errorInternalServer = errorJSON(999)
	errorLoading        = errorJSON(1000)
	errorLoadFailed     = errorJSON(1001)

	errorInvalidParameters = errorJSON(1010)
	errorIndexOutOfRange   = errorJSON(1011)
	errorUnknownDirection  = errorJSON(1012)
	errorUnknownBaseMap    = errorJSON(1013)
	errorUnknownMarker     = errorJSON(1014)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail exposes the cause to the client. Only used where the cause is
// about the user's own input or dataset.
func (e ErrorResponse) withDetail(err error) ErrorResponse {
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
