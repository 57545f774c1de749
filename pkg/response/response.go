package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope for every endpoint. Exactly one of Data,
// Details, Errors is set depending on the outcome:
//   - success:            {status, data}
//   - validation failure: {status: 400, details: [field messages]}
//   - other failure:      {status, errors: [messages]}
type APIResponse struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Details   []string    `json:"details,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

func base(ctx *gin.Context, status int) APIResponse {
	return APIResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
	}
}

func Success(ctx *gin.Context, status int, data interface{}, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	r := base(ctx, status)
	r.Message = message
	r.Data = data
	ctx.JSON(status, r)
}

func ValidationFailure(ctx *gin.Context, details []string) {
	r := base(ctx, http.StatusBadRequest)
	r.Details = details
	ctx.JSON(r.Status, r)
}

func Failure(ctx *gin.Context, status int, errs ...string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	r := base(ctx, status)
	r.Errors = errs
	ctx.JSON(status, r)
}

// AbortFailure writes a failure envelope and stops the handler chain.
// Meant for middleware.
func AbortFailure(ctx *gin.Context, status int, errs ...string) {
	r := base(ctx, status)
	r.Errors = errs
	ctx.AbortWithStatusJSON(status, r)
}
