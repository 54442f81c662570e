package models_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/ankihelper/pkg/models"
)

var _ = Describe("Request Models", func() {
	Context("AnkiCardRequest", func() {
		It("should default the optional fields to empty strings", func() {
			var card models.AnkiCardRequest
			err := json.Unmarshal([]byte(`{"danish":"hej","english":"hi"}`), &card)

			Expect(err).NotTo(HaveOccurred())
			Expect(card.Danish).To(Equal("hej"))
			Expect(card.English).To(Equal("hi"))
			Expect(card.Pronunciation).To(BeEmpty())
			Expect(card.Notes).To(BeEmpty())
		})
	})

	Context("PublicConfig", func() {
		It("should keep the field names the browser client expects", func() {
			data, err := json.Marshal(models.PublicConfig{
				AnkiConnectURL: "http://127.0.0.1:8765",
				DeckName:       "Default",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(MatchJSON(`{"ankiConnectUrl":"http://127.0.0.1:8765","deckName":"Default"}`))
		})
	})
})
