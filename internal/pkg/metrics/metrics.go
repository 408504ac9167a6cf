package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas Prometheus de la API sobre un registro propio.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests            *prometheus.CounterVec
	HTTPDuration            *prometheus.HistogramVec
	LoginAttempts           *prometheus.CounterVec
	EntrenadoresRegistrados prometheus.Counter
}

// New crea y registra todas las métricas.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entrenadores_http_requests_total",
			Help: "Total de peticiones HTTP por método, ruta y estado",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "entrenadores_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entrenadores_login_attempts_total",
			Help: "Intentos de inicio de sesión por rol y resultado",
		}, []string{"role", "result"}),
		EntrenadoresRegistrados: factory.NewCounter(prometheus.CounterOpts{
			Name: "entrenadores_registrados_total",
			Help: "Total de entrenadores registrados desde el arranque",
		}),
	}
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLogin cuenta un intento de inicio de sesión.
func (m *Metrics) ObserveLogin(role string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.LoginAttempts.WithLabelValues(role, result).Inc()
}

// IncrementEntrenadoresRegistrados suma un registro exitoso.
func (m *Metrics) IncrementEntrenadoresRegistrados() {
	m.EntrenadoresRegistrados.Inc()
}

// Middleware mide cada petición usando el patrón de ruta de chi como etiqueta,
// para no crear una serie por cada UUID.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "desconocida"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
