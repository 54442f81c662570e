package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kpauljoseph/ankihelper/internal/apperr"
	"github.com/kpauljoseph/ankihelper/pkg/models"
)

const (
	cardAddedMessage = "Card added successfully"

	// HeaderTranslationFallback marks a translation whose model output was not
	// valid JSON and was repackaged.
	HeaderTranslationFallback = "X-Translation-Fallback"
)

func (s *Server) getConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.Public())
}

func (s *Server) translate(c echo.Context) error {
	var req models.TranslationRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	result, err := s.translator.Translate(c.Request().Context(), req.DanishText)
	if err != nil {
		return err
	}

	body, err := result.Body()
	if err != nil {
		return apperr.Upstream("Error translating text: "+err.Error(), err)
	}

	if result.Degraded() {
		c.Response().Header().Set(HeaderTranslationFallback, "true")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

func (s *Server) addToAnki(c echo.Context) error {
	var req models.AnkiCardRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	ankiResponse, err := s.cards.AddNote(c.Request().Context(), s.cfg.DeckName, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.AddCardResponse{
		Message:      cardAddedMessage,
		AnkiResponse: ankiResponse,
	})
}
