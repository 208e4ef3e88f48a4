package core

import "fmt"

// ErrorCode classifies a rejected command.
type ErrorCode string

const (
	CodeInvalidPlacement  ErrorCode = "INVALID_PLACEMENT"
	CodeUnknownSlot       ErrorCode = "UNKNOWN_SLOT"
	CodeItemUnavailable   ErrorCode = "ITEM_UNAVAILABLE"
	CodeInvalidItemTarget ErrorCode = "INVALID_ITEM_TARGET"
	CodeRoundOver         ErrorCode = "ROUND_OVER"
	CodeInvalidConfig     ErrorCode = "INVALID_CONFIG"
	CodeInvalidSnapshot   ErrorCode = "INVALID_SNAPSHOT"
)

// RuleError is returned when a command is rejected. Session state is
// unchanged whenever a RuleError is returned.
type RuleError struct {
	Code    ErrorCode
	Message string
}

func (e *RuleError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Code)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any RuleError with the same code, so errors.Is works against
// the sentinels below.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidPlacement  = &RuleError{Code: CodeInvalidPlacement}
	ErrUnknownSlot       = &RuleError{Code: CodeUnknownSlot}
	ErrItemUnavailable   = &RuleError{Code: CodeItemUnavailable}
	ErrInvalidItemTarget = &RuleError{Code: CodeInvalidItemTarget}
	ErrRoundOver         = &RuleError{Code: CodeRoundOver}
	ErrInvalidConfig     = &RuleError{Code: CodeInvalidConfig}
	ErrInvalidSnapshot   = &RuleError{Code: CodeInvalidSnapshot}
)

func ruleErr(code ErrorCode, format string, args ...any) error {
	return &RuleError{Code: code, Message: fmt.Sprintf(format, args...)}
}
