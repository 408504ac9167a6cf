package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"entrenadores/config"
	_ "entrenadores/docs"
	"entrenadores/internal/api/auth"
	"entrenadores/internal/api/catalogo"
	"entrenadores/internal/api/entrenador"
	"entrenadores/internal/api/router"
	"entrenadores/internal/pkg/cache"
	"entrenadores/internal/pkg/database"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/metrics"
	"entrenadores/internal/pkg/response"
	"entrenadores/internal/pkg/token"
	"entrenadores/internal/repository/authrepo"
	"entrenadores/internal/repository/catalogorepo"
	"entrenadores/internal/repository/entrenadorrepo"
	"entrenadores/internal/service/authservice"
	"entrenadores/internal/service/catalogoservice"
	"entrenadores/internal/service/entrenadorservice"
	"entrenadores/internal/validation"
)

// @title                       API de Entrenadores
// @version                     1.0
// @description                 Administración de entrenadores universitarios y sus facultades.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// 0. Variables de entorno (.env es opcional: en contenedores llegan por el entorno)
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: archivo .env no encontrado. Se usan solo las variables del entorno.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuración inválida: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	defer logger.Sync(appLog)
	appLog.Info("Configuración cargada.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 1. Infraestructura
	pool := database.DefaultPoolConfig
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	db, err := database.NewPostgresDB(cfg.DatabaseURL, pool)
	if err != nil {
		appLog.Fatal("Fallo al conectar con la base de datos.", err)
	}
	defer db.Close()
	appLog.Info("Conexión PostgreSQL establecida.", nil)

	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			// Sin Redis el inicio de sesión sigue disponible, solo sin límite de intentos.
			appLog.Warn("Redis no disponible, limitador de inicio de sesión desactivado.", map[string]interface{}{"error": err.Error()})
		} else {
			defer redisClient.Close()
			cacheClient = redisClient
			appLog.Info("Conexión Redis establecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	m := metrics.New()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	rs := response.New(appLog, !cfg.IsProduction())
	val := validation.New()

	// 2. Inyección de dependencias: Repository -> Service -> Handler
	entrenadorRepo := entrenadorrepo.NewEntrenadorRepository(db, cfg.DBTimeout, appLog)
	authRepo := authrepo.NewAuthRepository(db, cfg.DBTimeout, appLog)
	catalogoRepo := catalogorepo.NewCatalogoRepository(db, cfg.DBTimeout, appLog)

	entrenadorSvc := entrenadorservice.NewService(entrenadorRepo, appLog, m)
	authSvc := authservice.NewService(authRepo, tokenSvc, appLog, m)
	catalogoSvc := catalogoservice.NewService(catalogoRepo, appLog)

	handler := router.NewRouter(router.Dependencies{
		Logger:     appLog,
		Responder:  rs,
		Metrics:    m,
		TokenSvc:   tokenSvc,
		Cache:      cacheClient,
		Auth:       auth.NewHandler(authSvc, val, rs, appLog),
		Entrenador: entrenador.NewHandler(entrenadorSvc, val, rs, appLog),
		Catalogo:   catalogo.NewHandler(catalogoSvc, rs),
	}, router.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 3. Ejecución y apagado ordenado
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("Servidor escuchando.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Señal de apagado recibida. Deteniendo el servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLog.Error("El servidor terminó con error.", err)
		return
	}
	appLog.Info("Servidor detenido correctamente.", nil)
}
