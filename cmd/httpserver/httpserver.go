// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/cashcard/internal/carddelivery"
	"github.com/go-petr/cashcard/internal/cardrepo"
	"github.com/go-petr/cashcard/internal/cardservice"
	"github.com/go-petr/cashcard/internal/middleware"
	"github.com/go-petr/cashcard/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server backed by the given postgres connection.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	server, err := NewWithRepo(cardrepo.NewRepoPGS(conn), logger, config)
	if err != nil {
		return nil, err
	}

	server.DB = conn

	return server, nil
}

// NewWithRepo creates Server with instantiated domains and routes on top of
// any card store. Used directly for the memory db driver and in tests.
func NewWithRepo(repo cardservice.Repo, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	cardService := cardservice.New(repo)
	cardHandler := carddelivery.NewHandler(cardService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	// A mapped path hit with the wrong verb must answer 405, not 404.
	engine.HandleMethodNotAllowed = true

	engine.POST("/cashcards", cardHandler.Create)
	engine.GET("/cashcards/:id", cardHandler.Get)
	engine.GET("/cashcards", cardHandler.List)

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
