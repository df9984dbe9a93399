package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// statusRecorder captures the status code a handler wrote, for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogMiddleware tags every request with a short request id and logs
// method, path, status and duration.
func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()[:8]
		w.Header().Set("X-Request-ID", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s -> %d (%s)", reqID, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// 1. Load configuration from .env / environment
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Analysis service at %s", cfg.AnalyzerURL)

	// 2. Wire the analysis service client and the session registry
	srv := &Server{
		svc:       NewAnalyzerClient(cfg.AnalyzerURL),
		sessions:  NewSessionRegistry(),
		publicURL: cfg.PublicURL,
	}

	// 3. Set up HTTP routes (Go 1.22+ method+pattern routing)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", srv.handleHome)
	mux.HandleFunc("POST /upload", srv.handleUpload)
	mux.HandleFunc("GET /dashboard", srv.handleDashboard)
	mux.HandleFunc("GET /qr", srv.handleQR)
	mux.HandleFunc("GET /health", srv.handleHealth)

	handler := requestLogMiddleware(mux)

	// 4. Configure and start HTTP server
	httpServer := &http.Server{
		Addr:           cfg.Addr,
		Handler:        handler,
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		log.Printf("Dashboard listening on http://%s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// 5. Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal %v, shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
