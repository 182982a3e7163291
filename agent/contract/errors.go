package contract

import "errors"

var (
	ErrModelInvoke       = errors.New("model invoke failed")
	ErrMalformedToolCall = errors.New("model emitted a malformed tool call")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrMissingArgument   = errors.New("missing required argument")
	ErrValidation        = errors.New("validation failed")
)
