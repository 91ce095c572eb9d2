package domain

// ConversionResult is the outcome of one encoder invocation. A nonzero exit
// from the encoder is an expected outcome, not a Go error: Success is false
// and Message carries the tool's combined output for diagnosis. OutputPath is
// meaningful only when Success is true.
type ConversionResult struct {
	Success    bool
	OutputPath string
	Message    string
}

// DecodeResult is the outcome of one decoder invocation, with the same
// exit-code contract as ConversionResult. TempPath points at the decoded
// preview file and is meaningful only when Success is true.
type DecodeResult struct {
	Success  bool
	TempPath string
	Message  string
}
