// Package httpx maps repository results onto the HTTP response contract.
// Success responses wrap their payload in {"success":true,"data":...};
// failures carry the domain error's code and message with a status resolved
// from a code registry. Codes the registry does not know resolve to 500.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wheelshare/carpool-api/internal/domain"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody mirrors domain.Error on the wire.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	domain.CodeInvalidInput: http.StatusBadRequest,
	domain.CodeForbidden:    http.StatusForbidden,
	domain.CodeUnexpected:   http.StatusInternalServerError,
	domain.CodeDatabase:     http.StatusInternalServerError,

	domain.CodeUserNotFound: http.StatusNotFound,
	domain.CodeEmailTaken:   http.StatusConflict,

	domain.CodeDriverNotFound: http.StatusNotFound,

	domain.CodeSessionNotFound: http.StatusUnauthorized,
	domain.CodeSessionExpired:  http.StatusUnauthorized,

	domain.CodeBrandNotFound: http.StatusNotFound,

	domain.CodeCarNotFound: http.StatusNotFound,
	domain.CodePlateTaken:  http.StatusConflict,

	domain.CodeCityNotFound: http.StatusNotFound,

	domain.CodeTravelNotFound: http.StatusNotFound,
	domain.CodeTravelFull:     http.StatusConflict,

	domain.CodeInscriptionNotFound: http.StatusNotFound,
	domain.CodeAlreadyInscribed:    http.StatusConflict,
}

// StatusFor resolves an error to its HTTP status. Anything that is not a
// registered domain error, including plain errors from infrastructure, is a
// 500.
func StatusFor(err error) int {
	var de *domain.Error
	if errors.As(err, &de) {
		if status, ok := statusByCode[de.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// Response builds the status and body for a handler outcome. A zero status
// on success means 200; handlers pass 201 explicitly after creates. The
// status argument is ignored on failure.
func Response(status int, data any, err error) (int, Envelope) {
	if err != nil {
		body := ErrorBody{Code: domain.CodeUnexpected, Message: "unexpected error"}
		var de *domain.Error
		if errors.As(err, &de) {
			body = ErrorBody{Code: de.Code, Message: de.Message}
		}
		return StatusFor(err), Envelope{Success: false, Error: &body}
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, Envelope{Success: true, Data: data}
}

// OK writes a success envelope. Pass 0 for a plain 200.
func OK(c *gin.Context, status int, data any) {
	code, body := Response(status, data, nil)
	c.JSON(code, body)
}

// Fail writes a failure envelope.
func Fail(c *gin.Context, err error) {
	code, body := Response(0, nil, err)
	c.JSON(code, body)
}
