package generation

import "fmt"

// ValidateChartShape enforces the minimum structure of a chart payload:
// "timeColumns" and "data" must both be non-empty arrays. It runs on the
// Stage-1 result and again on the merged payload before the job completes,
// guarding against corruption during merge.
func ValidateChartShape(payload map[string]interface{}) error {
	if payload == nil {
		return fmt.Errorf("chart payload is empty")
	}

	cols, ok := payload["timeColumns"].([]interface{})
	if !ok {
		return fmt.Errorf("chart payload field \"timeColumns\" is missing or not an array")
	}
	if len(cols) == 0 {
		return fmt.Errorf("chart payload field \"timeColumns\" is empty")
	}

	rows, ok := payload["data"].([]interface{})
	if !ok {
		return fmt.Errorf("chart payload field \"data\" is missing or not an array")
	}
	if len(rows) == 0 {
		return fmt.Errorf("chart payload field \"data\" is empty")
	}

	return nil
}
