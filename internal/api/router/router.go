package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"entrenadores/internal/api/auth"
	"entrenadores/internal/api/catalogo"
	"entrenadores/internal/api/entrenador"
	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/cache"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/metrics"
	"entrenadores/internal/pkg/middleware"
	"entrenadores/internal/pkg/response"
)

// Dependencies reúne los handlers y la infraestructura ya inicializados en main.
type Dependencies struct {
	Logger    logger.Logger
	Responder *response.Responder
	Metrics   *metrics.Metrics
	TokenSvc  middleware.TokenService
	// Cache respalda el limitador de inicio de sesión. nil lo desactiva.
	Cache cache.Client

	Auth       *auth.Handler
	Entrenador *entrenador.Handler
	Catalogo   *catalogo.Handler
}

// Options son los ajustes HTTP que vienen de la configuración.
type Options struct {
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitPeriod time.Duration
}

// NewRouter configura y devuelve el router HTTP principal.
func NewRouter(deps Dependencies, opts Options) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globales ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Responder))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	noEncontrada := func(w http.ResponseWriter, req *http.Request) {
		deps.Responder.Error(w, req, apperror.NewNotFoundError(fmt.Sprintf("Ruta no encontrada: %s %s", req.Method, req.URL.Path)))
	}
	r.NotFound(noEncontrada)
	r.MethodNotAllowed(noEncontrada)

	// --- 2. Rutas públicas de operación ---
	r.Get("/ping", PingHandler)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authMw := middleware.NewAuthMiddleware(deps.TokenSvc, deps.Responder)
	soloAdmin := middleware.PermissionMiddleware(deps.Responder, domain.RoleAdmin)

	r.Route("/api", func(api chi.Router) {
		// --- 3. Inicio de sesión ---
		api.Route("/login", func(login chi.Router) {
			if deps.Cache != nil {
				login.Use(middleware.RateLimiter(deps.Cache, "login", opts.RateLimitMax, opts.RateLimitPeriod, deps.Responder, deps.Logger))
			}
			login.Post("/admin", deps.Auth.LoginAdmin)
			login.Post("/entrenador", deps.Auth.LoginEntrenador)
		})

		// --- 4. Administración de entrenadores ---
		api.Route("/admin/entrenadores", func(adm chi.Router) {
			adm.Use(authMw, soloAdmin)
			adm.Post("/", deps.Entrenador.Registrar)
			adm.Get("/", deps.Entrenador.Listar)
			adm.Put("/{"+entrenador.ParamEntrenadorID+"}", deps.Entrenador.Actualizar)
			adm.Put("/{"+entrenador.ParamEntrenadorID+"}/desactivar", deps.Entrenador.Desactivar)
		})

		// --- 5. Catálogos, para cualquier usuario autenticado ---
		api.Group(func(cat chi.Router) {
			cat.Use(authMw)
			cat.Get("/facultades", deps.Catalogo.ListarFacultades)
			cat.Get("/tipos-documento", deps.Catalogo.ListarTiposDocumento)
		})
	})

	return r
}

// PingHandler es el health check de la API.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
