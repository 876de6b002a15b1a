package core

import "fmt"

// Status is the closed set of machine-readable codes the server attaches
// to failed calls.
type Status string

const (
	StatusLoginFailed        Status = "loginFailed"
	StatusNotFound           Status = "notFound"
	StatusPreconditionFailed Status = "preconditionFailed"
	StatusError              Status = "error"
)

// APIError is the structured failure body carried by every non-2xx
// response. Callers branch on Status with errors.As for the recoverable
// cases and treat the rest as reportable failures. Transport-level
// failures are a different error kind entirely and are never converted
// into an APIError.
type APIError struct {
	Status  Status `json:"statusCode"`
	Message string `json:"message"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("multiplayer server error %q: %s", e.Status, e.Message)
}
