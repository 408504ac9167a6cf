package domain

import "context"

// UserRole es el rol que viaja dentro del token y habilita las rutas protegidas.
type UserRole string

// Roles reconocidos por la API.
const (
	RoleAdmin      UserRole = "admin"
	RoleEntrenador UserRole = "entrenador"
)

// Usuario es la identidad mínima devuelta tras un inicio de sesión exitoso.
type Usuario struct {
	ID        string `json:"id" example:"6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"`
	Nombres   string `json:"nombres" example:"Laura"`
	Apellidos string `json:"apellidos" example:"Gómez"`
}

// CredencialesAdmin es el payload de POST /api/login/admin.
type CredencialesAdmin struct {
	NumeroDocumento string `json:"numeroDocumento" validate:"required" example:"1012345678"`
}

// CredencialesEntrenador es el payload de POST /api/login/entrenador.
type CredencialesEntrenador struct {
	Correo          string `json:"correo" validate:"required" example:"laura.gomez@uni.edu.co"`
	NumeroDocumento string `json:"numeroDocumento" validate:"required" example:"1012345678"`
}

// ResultadoAutenticacion es la respuesta del inicio de sesión.
// Cuando Success es false solo se completa Message.
type ResultadoAutenticacion struct {
	Success bool     `json:"success"`
	User    *Usuario `json:"user,omitempty"`
	Role    UserRole `json:"role,omitempty"`
	Token   string   `json:"token,omitempty"`
	Message string   `json:"message,omitempty"`
}

// AuthRepository consulta las tablas de administradores y entrenadores activos.
// Ambos métodos devuelven (nil, nil) cuando no hay coincidencia.
type AuthRepository interface {
	FindActiveAdmin(ctx context.Context, numeroDocumento string) (*Usuario, error)
	FindActiveEntrenador(ctx context.Context, correo, numeroDocumento string) (*Usuario, error)
}
