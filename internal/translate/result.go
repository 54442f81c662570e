package translate

import (
	"encoding/json"

	"github.com/kpauljoseph/ankihelper/pkg/models"
)

// Result is either a StructuredResult or a FallbackResult.
type Result interface {
	// Body is the JSON document sent back to the client.
	Body() ([]byte, error)
	// Degraded reports whether the model output had to be repackaged.
	Degraded() bool

	isResult()
}

// StructuredResult holds model output that parsed as JSON. It is passed
// through byte for byte, never re-encoded.
type StructuredResult struct {
	Raw string
}

func (r StructuredResult) Body() ([]byte, error) {
	return []byte(r.Raw), nil
}

func (StructuredResult) Degraded() bool { return false }
func (StructuredResult) isResult()      {}

// FallbackResult wraps model output that was not valid JSON: the input goes
// into Danish and the raw output into English.
type FallbackResult struct {
	Translation models.TranslationResult
}

func (r FallbackResult) Body() ([]byte, error) {
	return json.Marshal(r.Translation)
}

func (FallbackResult) Degraded() bool { return true }
func (FallbackResult) isResult()      {}

func newResult(danishText, content string) Result {
	if json.Valid([]byte(content)) {
		return StructuredResult{Raw: content}
	}
	return FallbackResult{
		Translation: models.TranslationResult{
			Danish:        danishText,
			English:       content,
			Pronunciation: "",
			Notes:         "",
		},
	}
}
