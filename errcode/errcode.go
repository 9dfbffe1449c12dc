package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	InvalidConfig Code = "invalid_config"
	UnknownPin    Code = "unknown_pin"

	DisplayNotFound    Code = "display_not_found"
	StorageUnavailable Code = "storage_unavailable"
	UnknownMenu        Code = "unknown_menu"
	UnknownPrompt      Code = "unknown_prompt"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E, or returns nil when err is nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
