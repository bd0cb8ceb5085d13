package sanitize

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Wrap encloses raw user-supplied text in a boundary marker carrying a
// random nonce before it is embedded into a generation payload. The text
// inside the boundary cannot forge the closing marker, so instructions
// smuggled into an uploaded document stay data.
func Wrap(raw string) string {
	nonce := newNonce()
	cleaned := stripControl(raw)
	return fmt.Sprintf("<user_input_%s>\n%s\n</user_input_%s>", nonce, cleaned, nonce)
}

func newNonce() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// stripControl removes non-printing control characters that some extractors
// leave behind, keeping newlines and tabs.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
