package catalogorepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
)

const (
	queryFacultades     = `SELECT id, nombre FROM cc.ListarFacultadesUV ORDER BY nombre`
	queryTiposDocumento = `SELECT id, sigla, nombre FROM cc.ListarTiposDocumentoUV ORDER BY nombre`
)

// CatalogoRepository lee las vistas de datos de referencia.
type CatalogoRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCatalogoRepository crea el repositorio de catálogos.
func NewCatalogoRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *CatalogoRepository {
	return &CatalogoRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

// ListarFacultades devuelve todas las facultades ordenadas por nombre.
func (r *CatalogoRepository) ListarFacultades(ctx context.Context) ([]domain.Facultad, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, queryFacultades)
	if err != nil {
		return nil, fmt.Errorf("fallo al listar facultades: %w", err)
	}
	defer rows.Close()

	facultades := make([]domain.Facultad, 0)
	for rows.Next() {
		var f domain.Facultad
		if err := rows.Scan(&f.ID, &f.Nombre); err != nil {
			return nil, fmt.Errorf("fallo al leer facultad: %w", err)
		}
		facultades = append(facultades, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fallo al recorrer facultades: %w", err)
	}

	r.logger.Debug("Facultades listadas.", map[string]interface{}{"total": len(facultades)})
	return facultades, nil
}

// ListarTiposDocumento devuelve todos los tipos de documento ordenados por nombre.
func (r *CatalogoRepository) ListarTiposDocumento(ctx context.Context) ([]domain.TipoDocumento, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, queryTiposDocumento)
	if err != nil {
		return nil, fmt.Errorf("fallo al listar tipos de documento: %w", err)
	}
	defer rows.Close()

	tipos := make([]domain.TipoDocumento, 0)
	for rows.Next() {
		var td domain.TipoDocumento
		if err := rows.Scan(&td.ID, &td.Sigla, &td.Nombre); err != nil {
			return nil, fmt.Errorf("fallo al leer tipo de documento: %w", err)
		}
		tipos = append(tipos, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fallo al recorrer tipos de documento: %w", err)
	}

	r.logger.Debug("Tipos de documento listados.", map[string]interface{}{"total": len(tipos)})
	return tipos, nil
}
