package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape for every error the API returns. Status stays
// out of the body; Detail carries structured context such as the submitted
// vs calculated totals on a reconciliation failure.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError records the underlying error on the context so the logging
// middleware can surface it, then writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Message: msg,
		Detail:  detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
