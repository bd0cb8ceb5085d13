package extract

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Text-like extensions accepted without content sniffing.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".tsv":      true,
	".json":     true,
	".log":      true,
	".yaml":     true,
	".yml":      true,
}

// Extract converts an uploaded file into plain text. Binary uploads are
// rejected; everything text-like passes through with line endings normalized.
func Extract(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("file %q is empty", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !textExtensions[ext] {
		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "text/") &&
			!strings.HasPrefix(contentType, "application/json") {
			return "", fmt.Errorf("unsupported file type %q (detected %s)", ext, contentType)
		}
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("file %q contains no extractable text", filename)
	}

	return text, nil
}
