package apperrors

import "net/http"

// Domain errors of the job board. Conflicts answer 400, not 409: the
// client distinguishes them by message, which existing clients parse by message.

// --- users ---

var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"User already exists",
	http.StatusBadRequest,
)

// ErrUserNotRegistered is the login-time miss. Deliberately distinct from
// ErrIncorrectPassword so the client can steer the user to registration;
// the enumeration risk is an accepted, documented trade-off.
var ErrUserNotRegistered = New(
	CodeNotFound,
	"users",
	"User not registered",
	http.StatusNotFound,
)

var ErrIncorrectPassword = New(
	CodeInvalidCredentials,
	"users",
	"Incorrect password",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// --- applications ---

var ErrAlreadyApplied = New(
	CodeConflict,
	"applications",
	"Already applied",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// ErrApplicationDecided guards withdrawal: a decided application is
// immutable to the applicant.
var ErrApplicationDecided = New(
	CodeInvalidStatus,
	"applications",
	"Application has already been decided and cannot be withdrawn",
	http.StatusBadRequest,
)

var ErrInvalidAction = New(
	CodeInvalidOperation,
	"applications",
	"Invalid action",
	http.StatusBadRequest,
)
