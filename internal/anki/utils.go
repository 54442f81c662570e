package anki

import (
	"strings"

	"github.com/kpauljoseph/ankihelper/pkg/models"
)

const (
	ANKI_CONNECT_VERSION = 6

	BasicModelName = "Basic"
	NoteTag        = "anki-helper"
	backDivider    = "<hr>"
)

// BuildBackField renders the back of a card: the English text, then a divider
// and an extras block when pronunciation or notes are present. Each line of
// the block ends in a newline.
func BuildBackField(english, pronunciation, notes string) string {
	var extras strings.Builder

	if strings.TrimSpace(pronunciation) != "" {
		extras.WriteString("Pronunciation: " + pronunciation + "\n")
	}

	if strings.TrimSpace(notes) != "" {
		extras.WriteString(notes + "\n")
	}

	if extras.Len() == 0 {
		return english
	}
	return english + backDivider + extras.String()
}

func NewNote(deckName string, card models.AnkiCardRequest) Note {
	return Note{
		DeckName:  deckName,
		ModelName: BasicModelName,
		Fields: NoteFields{
			Front: card.Danish,
			Back:  BuildBackField(card.English, card.Pronunciation, card.Notes),
		},
		Tags: []string{NoteTag},
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
