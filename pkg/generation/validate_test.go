package generation

import "testing"

func TestValidateChartShape(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr bool
	}{
		{
			"valid",
			map[string]interface{}{
				"timeColumns": []interface{}{"Q1", "Q2"},
				"data":        []interface{}{map[string]interface{}{"workstream": "eng"}},
			},
			false,
		},
		{"nil payload", nil, true},
		{"missing both", map[string]interface{}{"title": "x"}, true},
		{
			"wrong field names and types",
			map[string]interface{}{"notTimeColumns": []interface{}{}, "data": "not-an-array"},
			true,
		},
		{
			"empty timeColumns",
			map[string]interface{}{"timeColumns": []interface{}{}, "data": []interface{}{1}},
			true,
		},
		{
			"empty data",
			map[string]interface{}{"timeColumns": []interface{}{"Q1"}, "data": []interface{}{}},
			true,
		},
		{
			"data is object not array",
			map[string]interface{}{"timeColumns": []interface{}{"Q1"}, "data": map[string]interface{}{}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartShape(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartShape() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
