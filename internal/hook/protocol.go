package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonProtocol implements Protocol with plain JSON over stdin/stdout.
type jsonProtocol struct{}

// NewProtocol creates the default JSON protocol.
func NewProtocol() Protocol {
	return jsonProtocol{}
}

// ReadInput reads and parses the hook payload. A malformed payload is
// reported as ErrInvalidInput; the caller answers with an empty output so
// a broken host message never blocks the session.
func (jsonProtocol) ReadInput(r io.Reader) (*HookInput, error) {
	var input HookInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &input, nil
}

// WriteOutput serializes the output as a single JSON object. A nil output
// is written as {}.
func (jsonProtocol) WriteOutput(w io.Writer, output *HookOutput) error {
	if output == nil {
		output = NewPassOutput()
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("write hook output: %w", err)
	}
	return nil
}
