package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger define la interfaz de logging estructurado.
// Handlers, servicios y repositorios dependen solo de esta interfaz.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
	With(fields map[string]interface{}) Logger
}

// ZapLogger implementa Logger sobre go.uber.org/zap.
type ZapLogger struct {
	z *zap.Logger
}

// NewLogger crea el logger de la aplicación.
// En producción emite JSON; en cualquier otro entorno usa el formato de consola.
func NewLogger(level, environment string) Logger {
	var encCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder

	if environment == "production" {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), ParseLevel(level))
	return &ZapLogger{z: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// NewNopLogger devuelve un logger que descarta todo. Útil en tests.
func NewNopLogger() Logger {
	return &ZapLogger{z: zap.NewNop()}
}

// ParseLevel convierte el nivel configurado; los valores desconocidos caen en info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error) {
	l.z.Error(msg, zap.Error(err))
}

// Fatal registra el error y termina el proceso.
func (l *ZapLogger) Fatal(msg string, err error) {
	l.z.Fatal(msg, zap.Error(err))
}

// With devuelve un logger hijo que agrega los campos a cada entrada.
func (l *ZapLogger) With(fields map[string]interface{}) Logger {
	return &ZapLogger{z: l.z.With(toZapFields(fields)...)}
}

// Sync vacía los buffers pendientes. Se llama al apagar el servidor.
func Sync(l Logger) {
	if zl, ok := l.(*ZapLogger); ok {
		_ = zl.z.Sync()
	}
}
