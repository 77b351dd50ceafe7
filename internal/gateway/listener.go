package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// CallbackListener authorizes payments by running a localhost HTTP
// endpoint that the gateway's hosted checkout page posts its signed
// result to, the headless counterpart of the browser's success handler.
type CallbackListener struct {
	addr   string
	logger *slog.Logger

	// OnReady, when set, receives the callback URL once the listener is
	// serving, so the hosted checkout can be pointed at it.
	OnReady func(callbackURL string)
}

// NewCallbackListener creates a listener bound to addr.
func NewCallbackListener(addr string, logger *slog.Logger) *CallbackListener {
	return &CallbackListener{addr: addr, logger: logger}
}

// Authorize serves the callback endpoint until the hosted checkout posts
// an authorization or ctx expires. Each attempt uses a fresh correlation
// token so stale callbacks from an earlier attempt are rejected.
func (l *CallbackListener) Authorize(ctx context.Context, intent Intent) (*Authorization, error) {
	token := uuid.New().String()
	result := make(chan Authorization, 1)

	r := chi.NewRouter()
	r.Use(requestLogger(l.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/callback/"+token, func(w http.ResponseWriter, req *http.Request) {
		var auth Authorization
		if err := json.NewDecoder(req.Body).Decode(&auth); err != nil {
			writeError(w, http.StatusBadRequest, "invalid callback payload")
			return
		}
		if auth.OrderID == "" || auth.PaymentID == "" || auth.Signature == "" {
			writeError(w, http.StatusBadRequest, "incomplete authorization")
			return
		}
		select {
		case result <- auth:
		default:
		}
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	})

	srv := &http.Server{
		Addr:         l.addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Bind synchronously so the callback URL is live before anyone is
	// told about it.
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return nil, fmt.Errorf("callback listener: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	callbackURL := fmt.Sprintf("http://%s/callback/%s", ln.Addr().String(), token)
	l.logger.Info("waiting for gateway callback",
		"gateway_order_id", intent.OrderID,
		"amount", intent.Amount,
		"currency", intent.Currency,
		"callback_url", callbackURL,
	)
	if l.OnReady != nil {
		go l.OnReady(callbackURL)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case auth := <-result:
		return &auth, nil
	case err := <-errCh:
		return nil, fmt.Errorf("callback listener: %w", err)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrPaymentCancelled, ctx.Err())
	}
}

// requestLogger logs callback requests.
func requestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.Info("callback request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
