package entrenadorrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/repository/llamada"
)

// Funciones y vistas del esquema cc.
const (
	fnRegistrar   = "cc.RegistrarEntrenadorUFT"
	fnModificar   = "cc.ModificarInformacionEntrenadorUFT"
	fnDesactivar  = "cc.DesactivarEntrenadorUFT"
	vistaDetalles = "cc.DetalleEntrenadoresFacultadesUV"
)

// EntrenadorRepository implementa domain.EntrenadorRepository sobre las funciones almacenadas.
// Los errores del driver se devuelven envueltos sin clasificar; la clasificación ocurre en el servicio.
type EntrenadorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewEntrenadorRepository crea el repositorio con el pool compartido.
func NewEntrenadorRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *EntrenadorRepository {
	return &EntrenadorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Registrar invoca la función de alta. pFechaFin solo se envía si el payload la trae.
func (r *EntrenadorRepository) Registrar(ctx context.Context, reg domain.RegistroEntrenador) (*domain.ResultadoOperacion, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	l := llamada.Nueva(fnRegistrar).
		Con("pSiglaTipoDocumento", reg.SiglaTipoDocumento).
		Con("pNombres", reg.Nombres).
		Con("pApellidos", reg.Apellidos).
		Con("pNumeroDocumento", reg.NumeroDocumento).
		Con("pCorreo", reg.Correo).
		Con("pFacultadNombres", pq.Array(reg.FacultadNombres))

	if reg.FechaFin != "" {
		fecha, err := domain.ParseFecha(reg.FechaFin)
		if err != nil {
			return nil, fmt.Errorf("fechaFin %q: %w", reg.FechaFin, err)
		}
		l.Con("pFechaFin", fecha)
	}

	query, args := l.SQL("mensaje", "identrenador", "detalles")
	r.logger.Debug("Ejecutando función de registro.", map[string]interface{}{"params": l.Nombres()})

	res, err := scanResultado(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Warn("La función de registro no devolvió filas.", nil)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fallo al ejecutar %s: %w", fnRegistrar, err)
	}

	return res, nil
}

// Listar consulta la vista de detalle ordenada por apellidos y nombres.
func (r *EntrenadorRepository) Listar(ctx context.Context, filtro domain.FiltroEntrenadores) ([]domain.Entrenador, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT idEntrenador, nombresEntrenador, apellidosEntrenador, siglaTipoDocumento,
       numeroDocumento, correo, fechaFin, facultadesAsignadas, estado
FROM ` + vistaDetalles
	var args []interface{}

	if filtro.NombreFacultad != "" {
		args = append(args, filtro.NombreFacultad)
		query += fmt.Sprintf(" WHERE $%d = ANY(facultadesAsignadas)", len(args))
	}
	query += " ORDER BY apellidosEntrenador, nombresEntrenador"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fallo al consultar %s: %w", vistaDetalles, err)
	}
	defer rows.Close()

	entrenadores := make([]domain.Entrenador, 0)
	for rows.Next() {
		var (
			e          domain.Entrenador
			fechaFin   sql.NullTime
			facultades pq.StringArray
			estado     sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.Nombres, &e.Apellidos, &e.SiglaTipoDocumento,
			&e.NumeroDocumento, &e.Correo, &fechaFin, &facultades, &estado,
		); err != nil {
			return nil, fmt.Errorf("fallo al leer fila de %s: %w", vistaDetalles, err)
		}
		if fechaFin.Valid {
			t := fechaFin.Time
			e.FechaFin = &t
		}
		e.FacultadesAsignadas = []string(facultades)
		if e.FacultadesAsignadas == nil {
			e.FacultadesAsignadas = []string{}
		}
		e.Estado = estado.String
		entrenadores = append(entrenadores, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fallo al recorrer %s: %w", vistaDetalles, err)
	}

	r.logger.Debug("Entrenadores listados.", map[string]interface{}{"total": len(entrenadores), "filtro": filtro.NombreFacultad})
	return entrenadores, nil
}

// Actualizar invoca la función de modificación enviando solo los campos presentes.
// Un null explícito en la fecha de fin o una lista de facultades vacía se traducen
// en las banderas pLimpiarFechaFin y pLimpiarFacultades.
func (r *EntrenadorRepository) Actualizar(ctx context.Context, id string, c domain.ActualizacionEntrenador) (*domain.ResultadoOperacion, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	l := llamada.Nueva(fnModificar).
		Con("pEntrenadorID", id).
		ConSi(c.NuevosNombres.TieneValor(), "pNuevosNombres", c.NuevosNombres.Valor).
		ConSi(c.NuevosApellidos.TieneValor(), "pNuevosApellidos", c.NuevosApellidos.Valor).
		ConSi(c.NuevoCorreo.TieneValor(), "pNuevoCorreo", c.NuevoCorreo.Valor)

	switch {
	case c.LimpiaFechaFin():
		l.Con("pLimpiarFechaFin", true)
	case c.NuevaFechaFin.TieneValor():
		fecha, err := domain.ParseFecha(c.NuevaFechaFin.Valor)
		if err != nil {
			return nil, fmt.Errorf("nuevaFechaFin %q: %w", c.NuevaFechaFin.Valor, err)
		}
		l.Con("pNuevaFechaFin", fecha)
	}

	switch {
	case c.LimpiaFacultades():
		l.Con("pLimpiarFacultades", true)
	case c.NuevosNombresFacultades.TieneValor():
		l.Con("pNuevosNombresFacultades", pq.Array(c.NuevosNombresFacultades.Valor))
	}

	query, args := l.SQL("mensaje", "entrenadorid", "detalles")
	r.logger.Debug("Ejecutando función de modificación.", map[string]interface{}{"entrenador_id": id, "params": l.Nombres()})

	res, err := scanResultado(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Warn("La función de modificación no devolvió filas.", map[string]interface{}{"entrenador_id": id})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fallo al ejecutar %s: %w", fnModificar, err)
	}

	return res, nil
}

// Desactivar invoca la función de baja lógica.
func (r *EntrenadorRepository) Desactivar(ctx context.Context, id string) (*domain.ResultadoDesactivacion, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args := llamada.Nueva(fnDesactivar).
		Con("pEntrenadorID", id).
		SQL("mensaje", "entrenadorid", "exito")

	var (
		res          domain.ResultadoDesactivacion
		mensaje      sql.NullString
		entrenadorID sql.NullString
		exito        sql.NullBool
	)
	err := r.DB.QueryRowContext(ctxTimeout, query, args...).Scan(&mensaje, &entrenadorID, &exito)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Warn("La función de desactivación no devolvió filas.", map[string]interface{}{"entrenador_id": id})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fallo al ejecutar %s: %w", fnDesactivar, err)
	}

	res.Mensaje = mensaje.String
	res.EntrenadorID = entrenadorID.String
	res.Exito = exito.Valid && exito.Bool
	return &res, nil
}

// scanResultado lee una fila (mensaje, id, detalles).
func scanResultado(row *sql.Row) (*domain.ResultadoOperacion, error) {
	var (
		mensaje  sql.NullString
		id       sql.NullString
		detalles []byte
	)
	if err := row.Scan(&mensaje, &id, &detalles); err != nil {
		return nil, err
	}

	return &domain.ResultadoOperacion{
		Mensaje:      mensaje.String,
		EntrenadorID: id.String,
		Detalles:     comoJSON(detalles),
	}, nil
}

// comoJSON conserva los detalles si ya son JSON y los envuelve como cadena si no lo son.
func comoJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return json.RawMessage(append([]byte(nil), b...))
	}
	quoted, _ := json.Marshal(string(b))
	return quoted
}
