package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	NoGeneSpecified ErrorCode = "NoGeneSpecified"
	InvalidFormat   ErrorCode = "InvalidFormat"
	WriteFailed     ErrorCode = "WriteFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
