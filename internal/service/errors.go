package service

import "fmt"

// Kind classifies a service error for the transport layer.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a client-facing failure. Msg is safe to return to callers.
// Errors that are not *Error are store failures.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrValidation)
// holds for every validation failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Kind sentinels for errors.Is.
var (
	ErrValidation     = &Error{Kind: KindValidation, Msg: "invalid input"}
	ErrAuthentication = &Error{Kind: KindAuthentication, Msg: "authentication required"}
	ErrAuthorization  = &Error{Kind: KindAuthorization, Msg: "access forbidden"}
	ErrNotFound       = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrConflict       = &Error{Kind: KindConflict, Msg: "already exists"}
)

// Specific failures.
var (
	ErrInvalidCredentials = newError(KindAuthentication, "invalid email or password")
	ErrInvalidToken       = newError(KindAuthentication, "invalid or expired token")
	ErrUserExists         = newError(KindConflict, "email or username already in use")
	ErrUserNotFound       = newError(KindNotFound, "user not found")
	ErrArticleNotFound    = newError(KindNotFound, "article not found")
	ErrCommentNotFound    = newError(KindNotFound, "comment not found")
	ErrAdminRequired      = newError(KindAuthorization, "admin role required")
	ErrForbidden          = newError(KindAuthorization, "access forbidden")
	ErrRoleChangeDenied   = newError(KindAuthorization, "only admins can change roles")
	ErrSelfDelete         = newError(KindValidation, "you cannot delete your own account")
	ErrNothingToUpdate    = newError(KindValidation, "nothing to update")
)
