package detect

import "net/http"

type Kind string

const (
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindBadRequest       Kind = "bad_request"
	KindMissingImage     Kind = "missing_image"
	KindConfiguration    Kind = "configuration"
	KindProvider         Kind = "provider"
	KindParse            Kind = "parse"
	KindUnhandled        Kind = "unhandled"
)

// Error is a pipeline failure. Message is what the caller sees; Err keeps
// the underlying cause for logs and errors.Is/As.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func errMethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Status: http.StatusMethodNotAllowed, Message: MsgMethodNotAllowed}
}

func errBadRequest(msg string, err error) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: msg, Err: err}
}

func errMissingImage() *Error {
	return &Error{Kind: KindMissingImage, Status: http.StatusBadRequest, Message: MsgNoImage}
}

func errConfiguration(err error) *Error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

func errProvider(status int, body string, err error) *Error {
	return &Error{Kind: KindProvider, Status: status, Message: msgProviderPrefix + body, Err: err}
}

func errParse(err error) *Error {
	return &Error{Kind: KindParse, Status: http.StatusOK, Message: MsgParseFailed, Err: err}
}

func errUnhandled(msg string, err error) *Error {
	return &Error{Kind: KindUnhandled, Status: http.StatusInternalServerError, Message: msg, Err: err}
}
