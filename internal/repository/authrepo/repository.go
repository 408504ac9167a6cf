package authrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
)

// Un registro está activo mientras su fecha de fin no haya pasado; NULL significa sin vencimiento.
const (
	queryAdminActivo = `SELECT id, nombres, apellidos FROM cc.Administrador
WHERE numeroDocumento = $1 AND (fechaFin IS NULL OR fechaFin > CURRENT_TIMESTAMP)
LIMIT 1`

	queryEntrenadorActivo = `SELECT id, nombres, apellidos FROM cc.Entrenador
WHERE LOWER(correo) = $1 AND numeroDocumento = $2 AND (fechaFin IS NULL OR fechaFin > CURRENT_TIMESTAMP)
LIMIT 1`
)

// AuthRepository implementa domain.AuthRepository.
type AuthRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAuthRepository crea el repositorio de autenticación.
func NewAuthRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *AuthRepository {
	return &AuthRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// FindActiveAdmin busca un administrador activo por número de documento.
func (r *AuthRepository) FindActiveAdmin(ctx context.Context, numeroDocumento string) (*domain.Usuario, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	u, err := scanUsuario(r.DB.QueryRowContext(ctxTimeout, queryAdminActivo, numeroDocumento))
	if err != nil {
		return nil, fmt.Errorf("fallo al consultar administrador: %w", err)
	}
	if u == nil {
		r.logger.Debug("Administrador no encontrado o inactivo.", nil)
	}
	return u, nil
}

// FindActiveEntrenador busca un entrenador activo por correo y número de documento.
func (r *AuthRepository) FindActiveEntrenador(ctx context.Context, correo, numeroDocumento string) (*domain.Usuario, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	u, err := scanUsuario(r.DB.QueryRowContext(ctxTimeout, queryEntrenadorActivo, correo, numeroDocumento))
	if err != nil {
		return nil, fmt.Errorf("fallo al consultar entrenador: %w", err)
	}
	if u == nil {
		r.logger.Debug("Entrenador no encontrado o inactivo.", map[string]interface{}{"correo": correo})
	}
	return u, nil
}

// scanUsuario devuelve (nil, nil) cuando la consulta no produjo filas.
func scanUsuario(row *sql.Row) (*domain.Usuario, error) {
	var u domain.Usuario
	err := row.Scan(&u.ID, &u.Nombres, &u.Apellidos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
