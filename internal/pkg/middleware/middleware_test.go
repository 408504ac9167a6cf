package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/middleware"
	"entrenadores/internal/pkg/response"
	"entrenadores/internal/pkg/token"
)

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func mensaje(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthMiddleware(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), false)
	tokens := token.NewService("secreto", time.Hour)
	otroEmisor := token.NewService("otro-secreto", time.Hour)

	valido, err := tokens.GenerateToken("u-1", "admin")
	require.NoError(t, err)
	ajeno, err := otroEmisor.GenerateToken("u-1", "admin")
	require.NoError(t, err)

	var visto middleware.UserClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = middleware.GetUserClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.NewAuthMiddleware(tokens, rs)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"sin encabezado", "", http.StatusUnauthorized, middleware.MsgTokenAusente},
		{"sin esquema bearer", "Basic abc", http.StatusUnauthorized, middleware.MsgTokenAusente},
		{"bearer vacío", "Bearer   ", http.StatusUnauthorized, middleware.MsgTokenAusente},
		{"firma ajena", "Bearer " + ajeno, http.StatusForbidden, middleware.MsgTokenInvalido},
		{"válido", "Bearer " + valido, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, mensaje(t, rec))
			}
		})
	}

	assert.Equal(t, middleware.UserClaims{UserID: "u-1", Role: domain.RoleAdmin}, visto)
}

func TestPermissionMiddleware(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), false)
	h := middleware.PermissionMiddleware(rs, domain.RoleAdmin)(http.HandlerFunc(okHandler))

	t.Run("sin identidad", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rol distinto", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "e-1", Role: domain.RoleEntrenador}))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Acceso denegado: Se requiere rol de Administrador.", mensaje(t, rec))
	})

	t.Run("rol correcto", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "a-1", Role: domain.RoleAdmin}))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestPermissionMiddleware_SeveralRolesMessage(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), false)
	h := middleware.PermissionMiddleware(rs, domain.RoleAdmin, domain.RoleEntrenador)(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "Acceso denegado: Se requiere rol de Administrador o Entrenador.", mensaje(t, rec))
}

// contador implementa cache.Client en memoria.
type contador struct {
	counts   map[string]int64
	expiraEn map[string]time.Duration
	err      error
}

func nuevoContador() *contador {
	return &contador{counts: map[string]int64{}, expiraEn: map[string]time.Duration{}}
}

func (c *contador) Incr(_ context.Context, key string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.counts[key]++
	return c.counts[key], nil
}

func (c *contador) Expire(_ context.Context, key string, d time.Duration) error {
	c.expiraEn[key] = d
	return nil
}

func (c *contador) TTL(_ context.Context, key string) (time.Duration, error) {
	return c.expiraEn[key], nil
}

func (c *contador) Close() error { return nil }

func TestRateLimiter(t *testing.T) {
	c := nuevoContador()
	rs := response.New(logger.NewNopLogger(), false)
	h := middleware.RateLimiter(c, "login", 2, time.Minute, rs, logger.NewNopLogger())(http.HandlerFunc(okHandler))

	var codes []int
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Equal(t, middleware.MsgLimiteExcedido, mensaje(t, last))
	assert.Equal(t, time.Minute, c.expiraEn["rate-limit:login:10.0.0.7"])
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	c := nuevoContador()
	rs := response.New(logger.NewNopLogger(), false)
	h := middleware.RateLimiter(c, "login", 1, time.Minute, rs, logger.NewNopLogger())(http.HandlerFunc(okHandler))

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	c := nuevoContador()
	c.err = errors.New("redis caído")
	rs := response.New(logger.NewNopLogger(), false)
	h := middleware.RateLimiter(c, "login", 1, time.Minute, rs, logger.NewNopLogger())(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("explotó") })

	t.Run("fuera de producción incluye la traza", func(t *testing.T) {
		h := middleware.Recoverer(response.New(logger.NewNopLogger(), true))(panicking)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var body domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INTERNAL_ERROR", body.Category)
		assert.Contains(t, body.Stack, "goroutine")
	})

	t.Run("en producción oculta la traza", func(t *testing.T) {
		h := middleware.Recoverer(response.New(logger.NewNopLogger(), false))(panicking)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var body domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Stack)
		assert.NotContains(t, rec.Body.String(), "explotó")
	})
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := middleware.RequestLogger(logger.NewNopLogger())(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
