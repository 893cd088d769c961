package domain

// Error is the expected-failure type every repository returns. Code drives
// the HTTP status mapping in pkg/httpx; Message is safe to show to API
// clients. The cache layer passes these through untouched.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// NewError builds a typed domain error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error codes understood by the HTTP status registry. Codes outside this
// list resolve to 500.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeForbidden    = "FORBIDDEN"
	CodeUnexpected   = "UNEXPECTED_ERROR"
	CodeDatabase     = "DATABASE_ERROR"

	CodeUserNotFound = "USER_NOT_FOUND"
	CodeEmailTaken   = "EMAIL_ALREADY_REGISTERED"

	CodeDriverNotFound = "DRIVER_NOT_FOUND"

	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeSessionExpired  = "SESSION_EXPIRED"

	CodeBrandNotFound = "BRAND_NOT_FOUND"

	CodeCarNotFound = "CAR_NOT_FOUND"
	CodePlateTaken  = "PLATE_ALREADY_REGISTERED"

	CodeCityNotFound = "CITY_NOT_FOUND"

	CodeTravelNotFound = "TRAVEL_NOT_FOUND"
	CodeTravelFull     = "TRAVEL_FULL"

	CodeInscriptionNotFound = "INSCRIPTION_NOT_FOUND"
	CodeAlreadyInscribed    = "ALREADY_INSCRIBED"
)
