// Package httperr builds the JSON error envelope shared by every endpoint.
package httperr

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"floorplan-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Body is the wire shape: {"error":{"code":..,"message":..},"detail":..}.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	if code == "" {
		code = CodeForStatus(status)
	}
	return Response{Status: status, Error: Body{Code: code, Message: msg}, Detail: detail}
}

// CodeForStatus derives a default code such as "NOT_FOUND" from the status text.
func CodeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

// AbortWithError keeps err on the gin context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, "", err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortRetryLater answers 503 with a Retry-After hint in whole seconds.
func AbortRetryLater(c *gin.Context, code string, err error, msg string, after time.Duration) {
	secs := int(after.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
	AbortWithCode(c, http.StatusServiceUnavailable, code, err, msg, nil)
}
