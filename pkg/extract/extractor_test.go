package extract

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
		wantErr  bool
	}{
		{"markdown", "plan.md", []byte("# Plan\n\n- ship"), "# Plan\n\n- ship", false},
		{"plain text", "notes.txt", []byte("  hello  \n"), "hello", false},
		{"crlf normalized", "win.csv", []byte("a,b\r\nc,d\r\n"), "a,b\nc,d", false},
		{"json by extension", "data.json", []byte(`{"k": 1}`), `{"k": 1}`, false},
		{"unknown extension but text content", "README", []byte("just words here"), "just words here", false},
		{"empty file", "empty.txt", nil, "", true},
		{"whitespace only", "blank.md", []byte("   \n\t  "), "", true},
		{"png binary", "logo.png", []byte("\x89PNG\r\n\x1a\n0000000000"), "", true},
		{"pdf binary", "doc.pdf", []byte("%PDF-1.4 stream \x00\x01\x02"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.filename, tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Extract() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractErrorNamesFile(t *testing.T) {
	_, err := Extract("holiday.png", []byte("\x89PNG\r\n\x1a\n0000000000"))
	if err == nil || !strings.Contains(err.Error(), ".png") {
		t.Errorf("error does not identify the rejected type: %v", err)
	}
}
