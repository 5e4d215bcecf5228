package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/output"
)

// Output writes JSON-encoded alerts to stdout.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output, optionally pretty-printing the JSON.
func New(pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, alert model.Alert) error {
	if err := o.enc.Encode(output.Summarize(alert)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
