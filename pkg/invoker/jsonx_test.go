package invoker

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fence no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", "Sure! Here you go: {\"a\":1} Hope that helps.", `{"a":1}`},
		{"array payload", "```json\n[1,2]\n```", `[1,2]`},
		{"no payload", "I cannot answer that.", ""},
		{"missing closer", "{\"a\": 1", `{"a": 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeStructuredRepairs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]interface{}
	}{
		{
			"trailing comma",
			`{"a": 1, "b": [2, 3,],}`,
			map[string]interface{}{"a": float64(1), "b": []interface{}{float64(2), float64(3)}},
		},
		{
			"missing closers",
			`{"a": {"b": [1, 2`,
			map[string]interface{}{"a": map[string]interface{}{"b": []interface{}{float64(1), float64(2)}}},
		},
		{
			"unterminated string",
			`{"a": "truncat`,
			map[string]interface{}{"a": "truncat"},
		},
		{
			"duplicate keys keep last",
			`{"a": 1, "a": 2}`,
			map[string]interface{}{"a": float64(2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			if err := decodeStructured(tt.in, &got); err != nil {
				t.Fatalf("decodeStructured failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decoded = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeStructuredRejectsGarbage(t *testing.T) {
	var out map[string]interface{}
	if err := decodeStructured("no json here at all", &out); err == nil {
		t.Fatal("expected an error for a payload with no structure")
	}
}
