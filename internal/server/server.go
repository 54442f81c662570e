package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kpauljoseph/ankihelper/internal/config"
	"github.com/kpauljoseph/ankihelper/internal/translate"
	"github.com/kpauljoseph/ankihelper/pkg/logger"
	"github.com/kpauljoseph/ankihelper/pkg/models"
)

// Translator turns Danish text into a translation result.
type Translator interface {
	Translate(ctx context.Context, danishText string) (translate.Result, error)
}

// CardCreator files a card in the card service and returns its raw response.
type CardCreator interface {
	AddNote(ctx context.Context, deckName string, card models.AnkiCardRequest) (string, error)
}

type Server struct {
	echo       *echo.Echo
	cfg        *config.Config
	translator Translator
	cards      CardCreator
	logger     *logger.Logger
}

func New(cfg *config.Config, translator Translator, cards CardCreator, log *logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(log.Writer())

	s := &Server{
		echo:       e,
		cfg:        cfg,
		translator: translator,
		cards:      cards,
		logger:     log,
	}

	e.HTTPErrorHandler = s.errorHandler

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:     true,
			LogURI:        true,
			LogStatus:     true,
			LogLatency:    true,
			LogRequestID:  true,
			LogError:      true,
			HandleError:   true,
			LogValuesFunc: s.logRequest,
		}),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{
				http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
				http.MethodPost, http.MethodDelete, http.MethodOptions,
			},
			// empty AllowHeaders echoes back whatever the preflight asks for
		}),
		// Unmatched requests fall through to the single-page client.
		middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  cfg.Server.StaticDir,
			Index: cfg.Server.IndexFile,
			HTML5: true,
		}),
	)

	s.routes()

	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")
	api.GET("/config", s.getConfig)
	api.POST("/translate", s.translate)
	api.POST("/add-to-anki", s.addToAnki)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server stops. A clean Shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("Listening on %s", s.cfg.Server.Address)
	if err := s.echo.Start(s.cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	if v.Error != nil {
		s.logger.Info("%s %s %d %s id=%s err=%v", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
		return nil
	}
	s.logger.Info("%s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
	return nil
}
