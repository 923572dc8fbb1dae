package errors

// Category classifies errors by subsystem.
type Category string

const (
	CategoryConfig   Category = "Config"
	CategoryIO       Category = "IO"
	CategoryInput    Category = "Input"
	CategoryInternal Category = "Internal"
)

// Severity is the error severity level.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

// Error codes. The leading digit of the numeric part encodes the category:
// 1xx config, 2xx I/O, 3xx input validation, 9xx internal.
const (
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"
	ErrCodeConfigRead    = "ERR_102_CONFIG_READ"
	ErrCodeFileNotFound  = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFileRead      = "ERR_202_FILE_READ"
	ErrCodeInvalidInput  = "ERR_301_INVALID_INPUT"
	ErrCodeInternal      = "ERR_901_INTERNAL"
)

// categoryFromCode derives the category from the code's numeric prefix.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryInput
	default:
		return CategoryInternal
	}
}

// severityFromCode derives the severity from the code. Internal errors are
// fatal; everything else is a recoverable error.
func severityFromCode(code string) Severity {
	if categoryFromCode(code) == CategoryInternal {
		return SeverityFatal
	}
	return SeverityError
}
