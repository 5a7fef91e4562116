package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/patungan/patungan/internal/auth"
	"github.com/patungan/patungan/internal/middleware"
	"github.com/patungan/patungan/internal/service"
	"github.com/patungan/patungan/internal/storage/sqlite"
	"github.com/patungan/patungan/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	port := getEnv("PORT", "8080")
	dbPath := getEnv("DB_PATH", "./data/patungan.db")
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	jwtManager := auth.NewJWTManager(jwtSecret, 24*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	billService := service.NewBillService(store)
	authService := service.NewAuthService(authenticator, jwtManager)

	requireAuth := middleware.RequireAuth(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authService.HandleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", authService.HandleLogin)

	mux.HandleFunc("GET /api/v1/currencies", billService.HandleCurrencies)
	mux.Handle("POST /api/v1/breakdown", optionalAuth(http.HandlerFunc(billService.HandleBreakdown)))
	mux.Handle("POST /api/v1/receipt", optionalAuth(http.HandlerFunc(billService.HandleReceipt)))

	mux.Handle("POST /api/v1/bills", requireAuth(http.HandlerFunc(billService.HandleCreateBill)))
	mux.Handle("GET /api/v1/bills/{id}", requireAuth(http.HandlerFunc(billService.HandleGetBill)))
	mux.Handle("GET /api/v1/bills/{id}/receipt", requireAuth(http.HandlerFunc(billService.HandleBillReceipt)))

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// h2c lets gRPC-style and browser clients share one cleartext port.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
