package middleware

import (
	"context"
	"net/http"
	"strings"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/response"
	"entrenadores/internal/pkg/token"
)

// ContextKey es el tipo de las claves que este paquete guarda en el contexto.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// Mensajes de rechazo del verificador de credenciales.
const (
	MsgTokenAusente  = "Acceso denegado: Token no proporcionado."
	MsgTokenInvalido = "Acceso denegado: Token inválido."
)

// UserClaims es la identidad extraída del token y anexada al contexto.
type UserClaims struct {
	UserID string
	Role   domain.UserRole
}

// TokenService define la validación que necesita el middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida el JWT del encabezado Authorization.
// Sin token responde 401; con un token inválido o expirado responde 403.
func NewAuthMiddleware(tokenSvc TokenService, rs *response.Responder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				rs.Error(w, r, apperror.NewUnauthorizedError(MsgTokenAusente))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				rs.Error(w, r, apperror.NewForbiddenError(MsgTokenInvalido))
				return
			}

			ctx := WithUserClaims(r.Context(), UserClaims{
				UserID: claims.UserID,
				Role:   domain.UserRole(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extrae el token de "Bearer <token>".
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

// WithUserClaims anexa la identidad al contexto.
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

// GetUserClaimsFromContext recupera la identidad anexada por NewAuthMiddleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// nombresRol es el texto que aparece en el mensaje de rechazo por rol.
var nombresRol = map[domain.UserRole]string{
	domain.RoleAdmin:      "Administrador",
	domain.RoleEntrenador: "Entrenador",
}

// PermissionMiddleware exige que la identidad del contexto tenga alguno de los roles.
// Una identidad ausente o un rol distinto producen 403.
func PermissionMiddleware(rs *response.Responder, requiredRoles ...domain.UserRole) func(next http.Handler) http.Handler {
	nombres := make([]string, 0, len(requiredRoles))
	for _, role := range requiredRoles {
		if n, ok := nombresRol[role]; ok {
			nombres = append(nombres, n)
		} else {
			nombres = append(nombres, string(role))
		}
	}
	msg := "Acceso denegado: Se requiere rol de " + strings.Join(nombres, " o ") + "."

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok || !tieneRol(claims.Role, requiredRoles) {
				rs.Error(w, r, apperror.NewForbiddenError(msg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tieneRol(role domain.UserRole, permitidos []domain.UserRole) bool {
	for _, p := range permitidos {
		if role == p {
			return true
		}
	}
	return false
}
