package anki_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/ankihelper/internal/anki"
	"github.com/kpauljoseph/ankihelper/pkg/models"
)

var _ = Describe("Back field", func() {
	DescribeTable("BuildBackField",
		func(english, pronunciation, notes, expected string) {
			Expect(anki.BuildBackField(english, pronunciation, notes)).To(Equal(expected))
		},
		Entry("english only", "hi", "", "", "hi"),
		Entry("whitespace extras are ignored", "hi", "  ", "\t\n", "hi"),
		Entry("pronunciation only", "hi", "hey", "", "hi<hr>Pronunciation: hey\n"),
		Entry("notes only", "hi", "", "informal greeting", "hi<hr>informal greeting\n"),
		Entry("pronunciation and notes", "hi", "hey", "informal greeting",
			"hi<hr>Pronunciation: hey\ninformal greeting\n"),
	)
})

var _ = Describe("NewNote", func() {
	It("should build a Basic note tagged for this tool", func() {
		note := anki.NewNote("Danish", models.AnkiCardRequest{
			Danish:        "hej",
			English:       "hi",
			Pronunciation: "hey",
		})

		Expect(note.DeckName).To(Equal("Danish"))
		Expect(note.ModelName).To(Equal("Basic"))
		Expect(note.Fields.Front).To(Equal("hej"))
		Expect(note.Fields.Back).To(Equal("hi<hr>Pronunciation: hey\n"))
		Expect(note.Tags).To(Equal([]string{"anki-helper"}))
	})
})
