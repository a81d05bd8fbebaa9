// internal/app/features/errors/logger.go
package errors

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the error page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg and err, then renders a 500 page showing userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderServerError(w, r, userMsg, backURL)
}

// Recoverer is middleware that turns a handler panic into a logged 500 page.
func (e *ErrorLogger) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				e.LogServerError(w, r, "handler panic", fmt.Errorf("panic: %v", rec), "", "/")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
