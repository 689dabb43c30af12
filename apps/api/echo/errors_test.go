package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorHandlerSignalsShutdown(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantShutdown bool
	}{
		{
			name:         "shutdown error stops the server",
			err:          errors.Wrap(core.NewShutdownError("driver: bad connection"), "searching topics"),
			wantShutdown: true,
		},
		{
			name: "ordinary server error does not",
			err:  errors.New("boom"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext()

			var signalled bool
			handler := newAppHTTPErrorHandler(nopLogger{}, nil, func() { signalled = true })
			handler(tt.err, ctx)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("code = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if signalled != tt.wantShutdown {
				t.Errorf("signalShutdown called = %v, want %v", signalled, tt.wantShutdown)
			}
		})
	}
}
