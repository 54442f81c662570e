package models

// TranslationRequest is the body of POST /api/translate.
type TranslationRequest struct {
	DanishText string `json:"danishText"`
}

// TranslationResult is the structured translation the model is asked to
// produce. The server only builds one itself when the model output is not
// valid JSON.
type TranslationResult struct {
	Danish        string `json:"danish"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
	Notes         string `json:"notes"`
}

// AnkiCardRequest is the body of POST /api/add-to-anki. Pronunciation and
// Notes are optional and decode as "" when absent.
type AnkiCardRequest struct {
	Danish        string `json:"danish"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
	Notes         string `json:"notes"`
}

type PublicConfig struct {
	AnkiConnectURL string `json:"ankiConnectUrl"`
	DeckName       string `json:"deckName"`
}

type AddCardResponse struct {
	Message      string `json:"message"`
	AnkiResponse string `json:"ankiResponse"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
