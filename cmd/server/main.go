package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beyondie2/word-quiz/internal/config"
	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/handlers"
	"github.com/beyondie2/word-quiz/internal/repository"
	"github.com/beyondie2/word-quiz/internal/security"
	"github.com/beyondie2/word-quiz/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	grammarRepo := repository.NewGrammarRepository(db)
	blocksRepo := repository.NewBlocksRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Services
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	quizService := service.NewQuizService(wordRepo, progressRepo)
	grammarService := service.NewGrammarService(grammarRepo, progressRepo)
	blocksService := service.NewBlocksService(blocksRepo, progressRepo)
	progressService := service.NewProgressService(progressRepo)
	userService := service.NewUserService(userRepo, wordRepo)
	adminService := service.NewAdminService(userRepo, wordRepo, grammarRepo, blocksRepo, progressRepo)

	// Handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(tokens, limiter, cfg.AllowedOrigins)
	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(quizService)
	quizHandler := handlers.NewQuizHandler(quizService)
	grammarHandler := handlers.NewGrammarHandler(grammarService)
	blocksHandler := handlers.NewBlocksHandler(blocksService)
	progressHandler := handlers.NewProgressHandler(progressService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService, cfg.UploadMaxSize)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/refresh", middleware.RateLimit(authHandler.Refresh))
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("POST /api/auth/logout", middleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("PUT /api/auth/change-password", middleware.RequireAuth(authHandler.ChangePassword))

	// Classroom user picker
	mux.HandleFunc("GET /api/users", middleware.RateLimit(userHandler.List))
	mux.HandleFunc("POST /api/users/verify", middleware.RateLimit(userHandler.Verify))

	// Vocabulary content
	mux.HandleFunc("GET /api/books", middleware.RequireAuth(bookHandler.ListBooks))
	mux.HandleFunc("GET /api/books/{book}/units", middleware.RequireAuth(bookHandler.ListUnits))
	mux.HandleFunc("GET /api/books/{book}/units/{unit}/words", middleware.RequireAuth(bookHandler.ListWords))

	// Word quiz
	mux.HandleFunc("POST /api/quiz/check", middleware.RequireAuth(quizHandler.Check))

	// Grammar
	mux.HandleFunc("GET /api/grammar/categories", middleware.RequireAuth(grammarHandler.ListCategories))
	mux.HandleFunc("GET /api/grammar/subcategories", middleware.RequireAuth(grammarHandler.ListSubcategories))
	mux.HandleFunc("GET /api/grammar/levels", middleware.RequireAuth(grammarHandler.ListLevels))
	mux.HandleFunc("GET /api/grammar/instructions", middleware.RequireAuth(grammarHandler.ListInstructions))
	mux.HandleFunc("GET /api/grammar/questions", middleware.RequireAuth(grammarHandler.ListQuestions))
	mux.HandleFunc("POST /api/grammar/check", middleware.RequireAuth(grammarHandler.Check))

	// Block writing
	mux.HandleFunc("GET /api/blocks", middleware.RequireAuth(blocksHandler.List))
	mux.HandleFunc("POST /api/blocks/upload", middleware.RequireAdmin(blocksHandler.Upload))
	mux.HandleFunc("POST /api/blocks/result", middleware.RequireAuth(blocksHandler.Result))
	mux.HandleFunc("DELETE /api/blocks/{id}", middleware.RequireAdmin(blocksHandler.Delete))
	mux.HandleFunc("DELETE /api/blocks", middleware.RequireAdmin(blocksHandler.DeleteAll))

	// Progress
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.Get))
	mux.HandleFunc("POST /api/progress", middleware.RequireAuth(progressHandler.Append))
	mux.HandleFunc("GET /api/progress/{userId}/wrong-words", middleware.RequireAuth(progressHandler.WrongWords))
	mux.HandleFunc("POST /api/progress/{userId}/next-round", middleware.RequireAuth(progressHandler.NextRound))
	mux.HandleFunc("GET /api/progress/grammar", middleware.RequireAuth(progressHandler.GrammarLog))
	mux.HandleFunc("GET /api/progress/blocks", middleware.RequireAuth(progressHandler.BlocksLog))

	// Admin
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.ListUsers))
	mux.HandleFunc("POST /api/admin/users", middleware.RequireAdmin(adminHandler.CreateUser))
	mux.HandleFunc("PATCH /api/admin/users/{id}/toggle-admin", middleware.RequireAdmin(adminHandler.ToggleAdmin))
	mux.HandleFunc("DELETE /api/admin/users/{id}", middleware.RequireAdmin(adminHandler.DeleteUser))
	mux.HandleFunc("GET /api/admin/stats", middleware.RequireAdmin(adminHandler.Stats))
	mux.HandleFunc("POST /api/admin/books/upload", middleware.RequireAdmin(adminHandler.UploadWords))
	mux.HandleFunc("POST /api/admin/grammar/upload", middleware.RequireAdmin(adminHandler.UploadGrammar))
	mux.HandleFunc("POST /api/admin/blocks/upload", middleware.RequireAdmin(adminHandler.UploadBlocks))
	mux.HandleFunc("GET /api/admin/books", middleware.RequireAdmin(adminHandler.ListBooks))
	mux.HandleFunc("DELETE /api/admin/books/{book}", middleware.RequireAdmin(adminHandler.DeleteBook))
	mux.HandleFunc("GET /api/admin/grammar", middleware.RequireAdmin(adminHandler.ListGrammar))
	mux.HandleFunc("DELETE /api/admin/grammar/{category}", middleware.RequireAdmin(adminHandler.DeleteGrammarCategory))

	handler := handlers.Logging(middleware.CORS(mux))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
