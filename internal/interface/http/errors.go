package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/radenmas/socialite-api/pkg/apperr"
	"github.com/radenmas/socialite-api/pkg/response"
)

// respondError maps a service error onto the response envelope using the
// apperr status table. Validation failures surface their per-field details;
// everything else carries plain error messages.
func respondError(c *gin.Context, err error) {
	status := apperr.StatusCode(err)
	if e := apperr.As(err); e != nil {
		if e.Kind == apperr.Validation {
			response.ValidationFailure(c, e.Details)
			return
		}
		response.Failure(c, status, e.Messages...)
		return
	}
	response.Failure(c, status, err.Error())
}
