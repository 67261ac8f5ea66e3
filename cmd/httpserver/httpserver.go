// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/wallet-tracker/internal/aisummary"
	"github.com/finwise/wallet-tracker/internal/middleware"
	"github.com/finwise/wallet-tracker/internal/summarydelivery"
	"github.com/finwise/wallet-tracker/internal/summaryservice"
	"github.com/finwise/wallet-tracker/internal/transactiondelivery"
	"github.com/finwise/wallet-tracker/internal/transactionrepo"
	"github.com/finwise/wallet-tracker/internal/transactionservice"
	"github.com/finwise/wallet-tracker/internal/userdelivery"
	"github.com/finwise/wallet-tracker/internal/userrepo"
	"github.com/finwise/wallet-tracker/internal/userservice"
	"github.com/finwise/wallet-tracker/pkg/configpkg"
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

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	demoUserID, err := uuid.Parse(config.DemoUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid demo user id: %w", err)
	}

	transactionRepo := transactionrepo.NewRepoPGS(conn)
	userRepo := userrepo.NewRepoPGS(conn)

	var narrator summaryservice.Narrator
	if config.OpenAIAPIKey != "" {
		narrator = aisummary.New(config.OpenAIAPIKey)
	}

	transactionService := transactionservice.New(transactionRepo, time.Now)
	summaryService := summaryservice.New(transactionRepo, narrator, time.Now)
	userService := userservice.New(userRepo)

	transactionHandler := transactiondelivery.NewHandler(transactionService, demoUserID, time.Now)
	summaryHandler := summarydelivery.NewHandler(summaryService, demoUserID)
	userHandler := userdelivery.NewHandler(userService, demoUserID)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/transactions", transactionHandler.Create)
	engine.GET("/transactions", transactionHandler.List)
	engine.PUT("/transactions/:id", transactionHandler.Update)
	engine.DELETE("/transactions/:id", transactionHandler.Delete)

	engine.GET("/balance", summaryHandler.Balance)
	engine.GET("/summary", summaryHandler.Summary)
	engine.POST("/summary/narrative", summaryHandler.Narrative)

	engine.GET("/users/demo", userHandler.Demo)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
