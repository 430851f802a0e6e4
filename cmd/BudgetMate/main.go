package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sebuszqo/BudgetMate/internal/auth"
	database "github.com/sebuszqo/BudgetMate/internal/db"
	"github.com/sebuszqo/BudgetMate/internal/finance/application"
	"github.com/sebuszqo/BudgetMate/internal/finance/infrastructure"
	"github.com/sebuszqo/BudgetMate/internal/finance/interfaces"
	"github.com/sebuszqo/BudgetMate/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	goalHandler        *interfaces.GoalHandler
	settingsHandler    *interfaces.SettingsHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	goalHandler *interfaces.GoalHandler,
	settingsHandler *interfaces.SettingsHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		goalHandler:        goalHandler,
		settingsHandler:    settingsHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	authenticated := s.authService.JWTAccessTokenMiddleware()

	protectedRoutes.Handle("GET /api/protected/profile",
		authenticated(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))

	// TRANSACTIONS API
	protectedRoutes.Handle("POST /api/protected/transactions",
		authenticated(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions",
		authenticated(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	protectedRoutes.Handle("PUT /api/protected/transactions/{transactionID}",
		authenticated(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}",
		authenticated(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions/summary",
		authenticated(http.HandlerFunc(s.transactionHandler.GetPeriodSummary)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories",
		authenticated(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories",
		authenticated(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("POST /api/protected/categories/defaults",
		authenticated(http.HandlerFunc(s.categoryHandler.EnsureDefaultCategories)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}",
		authenticated(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}",
		authenticated(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// GOALS API
	protectedRoutes.Handle("GET /api/protected/goals",
		authenticated(http.HandlerFunc(s.goalHandler.GetUserGoals)))
	protectedRoutes.Handle("POST /api/protected/goals",
		authenticated(http.HandlerFunc(s.goalHandler.CreateGoal)))
	protectedRoutes.Handle("PUT /api/protected/goals/{goalID}",
		authenticated(http.HandlerFunc(s.goalHandler.UpdateGoal)))
	protectedRoutes.Handle("PATCH /api/protected/goals/{goalID}/progress",
		authenticated(http.HandlerFunc(s.goalHandler.UpdateProgress)))
	protectedRoutes.Handle("DELETE /api/protected/goals/{goalID}",
		authenticated(http.HandlerFunc(s.goalHandler.DeleteGoal)))

	// SETTINGS API
	protectedRoutes.Handle("GET /api/protected/settings",
		authenticated(http.HandlerFunc(s.settingsHandler.GetSettings)))
	protectedRoutes.Handle("PUT /api/protected/settings",
		authenticated(http.HandlerFunc(s.settingsHandler.UpdateSettings)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	analyticsService := application.NewAnalyticsService(transactionRepo, categoryRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, analyticsService, respondJSON, respondError)

	goalRepo := infrastructure.NewGoalRepository(dbService.DB)
	goalService := application.NewGoalService(goalRepo)
	goalHandler := interfaces.NewGoalHandler(goalService, respondJSON, respondError)

	settingsRepo := infrastructure.NewSettingsRepository(dbService.DB)
	settingsService := application.NewSettingsService(settingsRepo)
	settingsHandler := interfaces.NewSettingsHandler(settingsService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, transactionHandler, categoryHandler, goalHandler, settingsHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
