package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrRequestFailed represents network-level failures reaching MyGene.info
	ErrRequestFailed ErrorCode = "RequestFailed"

	// ErrUpstreamStatus represents a non-2xx response from MyGene.info
	ErrUpstreamStatus ErrorCode = "UpstreamStatus"

	// ErrDecodeResponse represents an unparsable upstream payload
	ErrDecodeResponse ErrorCode = "DecodeResponseError"

	// ErrBatchTooLarge represents a batch request exceeding MaxBatchSize ids
	ErrBatchTooLarge ErrorCode = "BatchTooLarge"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
