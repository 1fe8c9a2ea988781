package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput         = errors.New("input is empty or contains only whitespace")
	ErrNoInput            = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrFileNotFound       = errors.New("file not found")
	ErrFileEmpty          = errors.New("file is empty")
	ErrInvalidFilePath    = errors.New("invalid file path")
	ErrUnterminatedString = errors.New("unterminated string literal at end of input")
	ErrDuplicateKey       = errors.New("duplicate object key")
	ErrNestingTooDeep     = errors.New("nesting too deep")
	ErrTrailingTokens     = errors.New("trailing tokens after the top-level value")
)

// ErrorType categorizes errors by the stage that detected them
type ErrorType string

const (
	// ErrorTypeLexical covers illegal code points, unterminated strings and
	// malformed keywords found by the tokenizer, plus illegal string content.
	ErrorTypeLexical ErrorType = "lexical"
	// ErrorTypeGrammar covers malformed numeric literals; the message always
	// names the offending index within the numeral.
	ErrorTypeGrammar ErrorType = "grammar"
	// ErrorTypeStructural covers token-arrangement errors from the value
	// parser: unexpected tokens, missing colons or brackets, duplicate keys.
	ErrorTypeStructural ErrorType = "structural"
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewLexicalError creates a new error for an illegal character or token
func NewLexicalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLexical,
		Message: message,
		Err:     err,
	}
}

// NewGrammarError creates a new error for a malformed numeric literal
func NewGrammarError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeGrammar,
		Message: message,
		Err:     err,
	}
}

// NewStructuralError creates a new error for an invalid token arrangement
func NewStructuralError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeStructural,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeLexical:
			return fmt.Sprintf("Lexical error: %s", appErr.Message)
		case ErrorTypeGrammar:
			return fmt.Sprintf("Malformed number: %s", appErr.Message)
		case ErrorTypeStructural:
			return fmt.Sprintf("Invalid JSON structure: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrNestingTooDeep) {
		return "Error: The document is nested too deeply. Raise the limit with --max-depth."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
