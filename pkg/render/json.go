package render

import (
	"encoding/json"

	"github.com/calgrid/calgrid/pkg/pipeline"
)

// JSONResult serializes a pipeline result with stable field order and
// trailing newline, suitable for files and API responses alike.
func JSONResult(result *pipeline.Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
