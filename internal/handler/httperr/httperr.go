package httperr

import (
	"github.com/gin-gonic/gin"
)

type Body struct {
	Message string `json:"message"`
}

// Response is the envelope every non-2xx handler reply uses:
// {"error":{"message":...},"detail":...}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Body{Message: msg},
		Detail: detail,
	}
}

// AbortWithError records err on the gin context for the logging
// middleware and writes the public envelope. err carries the cause
// chain; msg is the only text a client sees.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
