package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/talkmate/talkmate-backend/internal/ai"
	"github.com/talkmate/talkmate-backend/internal/delivery"
	"github.com/talkmate/talkmate-backend/internal/domain"
	"github.com/talkmate/talkmate-backend/internal/error_notificator"
	"github.com/talkmate/talkmate-backend/internal/infra"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		log.Fatal("AUTH_SECRET is not set")
	}

	chatModel := os.Getenv("CHAT_MODEL")
	if chatModel == "" {
		chatModel = "mistral"
	}
	grammarModel := os.Getenv("GRAMMAR_MODEL")
	if grammarModel == "" {
		grammarModel = "llama3"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra()
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	turnRepo := infra.NewTurnRepo(db)
	sessionRepo := infra.NewSessionRepo(db)
	userRepo := infra.NewUserRepo(db)
	tokenRepo := infra.NewTokenRepo(db)

	// =========================================================================
	// CLIENTS
	// =========================================================================

	ollamaClient := ai.NewOllamaClient()
	paymentProvider := infra.NewRazorpayProvider()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	authService := domain.NewAuthService(userRepo, tokenRepo, secret)
	turnService := domain.NewTurnService(turnRepo, errService)

	chatService := ai.NewService(
		ollamaClient,
		sessionRepo,
		turnService,
		errService,
		chatModel,
		grammarModel,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	authHandler := delivery.NewAuthHandler(authService)
	chatHandler := delivery.NewChatHandler(chatService, zl)
	paymentHandler := delivery.NewPaymentHandler(paymentProvider, zl)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		authHandler,
		chatHandler,
		paymentHandler,
		authService,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "talkmate",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
