package entrenadorservice_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/service/entrenadorservice"
)

// MockEntrenadorRepository es una implementación mock de domain.EntrenadorRepository.
type MockEntrenadorRepository struct {
	mock.Mock
}

func (m *MockEntrenadorRepository) Registrar(ctx context.Context, registro domain.RegistroEntrenador) (*domain.ResultadoOperacion, error) {
	args := m.Called(ctx, registro)
	res, _ := args.Get(0).(*domain.ResultadoOperacion)
	return res, args.Error(1)
}

func (m *MockEntrenadorRepository) Listar(ctx context.Context, filtro domain.FiltroEntrenadores) ([]domain.Entrenador, error) {
	args := m.Called(ctx, filtro)
	res, _ := args.Get(0).([]domain.Entrenador)
	return res, args.Error(1)
}

func (m *MockEntrenadorRepository) Actualizar(ctx context.Context, id string, cambios domain.ActualizacionEntrenador) (*domain.ResultadoOperacion, error) {
	args := m.Called(ctx, id, cambios)
	res, _ := args.Get(0).(*domain.ResultadoOperacion)
	return res, args.Error(1)
}

func (m *MockEntrenadorRepository) Desactivar(ctx context.Context, id string) (*domain.ResultadoDesactivacion, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.ResultadoDesactivacion)
	return res, args.Error(1)
}

type contadorRegistros struct{ n int }

func (c *contadorRegistros) IncrementEntrenadoresRegistrados() { c.n++ }

const entrenadorID = "6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"

func setup() (*entrenadorservice.Service, *MockEntrenadorRepository, *contadorRegistros) {
	repo := new(MockEntrenadorRepository)
	rec := &contadorRegistros{}
	return entrenadorservice.NewService(repo, logger.NewNopLogger(), rec), repo, rec
}

func TestRegistrar_Success(t *testing.T) {
	svc, repo, rec := setup()
	ctx := context.Background()
	reg := domain.RegistroEntrenador{NumeroDocumento: "1012345678", FacultadNombres: []string{"Artes"}}
	esperado := &domain.ResultadoOperacion{Mensaje: "Entrenador registrado exitosamente.", EntrenadorID: entrenadorID}

	repo.On("Registrar", ctx, reg).Return(esperado, nil).Once()

	res, err := svc.Registrar(ctx, reg)

	require.NoError(t, err)
	assert.Equal(t, esperado, res)
	assert.Equal(t, 1, rec.n)
	repo.AssertExpectations(t)
}

func TestRegistrar_DuplicateBecomesConflict(t *testing.T) {
	svc, repo, rec := setup()
	ctx := context.Background()
	pqErr := &pq.Error{Code: "23505", Hint: "El número de documento 1012345678 ya está registrado."}

	repo.On("Registrar", ctx, mock.Anything).Return(nil, pqErr).Once()

	res, err := svc.Registrar(ctx, domain.RegistroEntrenador{})

	assert.Nil(t, res)
	var conflict *apperror.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "El número de documento 1012345678 ya está registrado.", conflict.Message())
	assert.Nil(t, conflict.Details())
	assert.Zero(t, rec.n)
}

func TestRegistrar_NoRowsIsInternal(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Registrar", ctx, mock.Anything).Return(nil, nil).Once()

	_, err := svc.Registrar(ctx, domain.RegistroEntrenador{})

	var internal *apperror.InternalError
	require.True(t, errors.As(err, &internal))
	assert.Equal(t, entrenadorservice.MsgSinResultadoRegistro, internal.Message())
}

func TestNewService_NilRecorder(t *testing.T) {
	repo := new(MockEntrenadorRepository)
	svc := entrenadorservice.NewService(repo, logger.NewNopLogger(), nil)
	ctx := context.Background()

	repo.On("Registrar", ctx, mock.Anything).Return(&domain.ResultadoOperacion{EntrenadorID: entrenadorID}, nil).Once()

	assert.NotPanics(t, func() {
		_, err := svc.Registrar(ctx, domain.RegistroEntrenador{})
		assert.NoError(t, err)
	})
}

func TestListar_TrimsFilter(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()
	filas := []domain.Entrenador{{ID: entrenadorID, Apellidos: "Álvarez"}}

	repo.On("Listar", ctx, domain.FiltroEntrenadores{NombreFacultad: "Ingeniería"}).Return(filas, nil).Once()

	got, err := svc.Listar(ctx, domain.FiltroEntrenadores{NombreFacultad: "  Ingeniería "})

	require.NoError(t, err)
	assert.Equal(t, filas, got)
	repo.AssertExpectations(t)
}

func TestListar_DriverErrorHidesDetails(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Listar", ctx, mock.Anything).Return(nil, sql.ErrConnDone).Once()

	_, err := svc.Listar(ctx, domain.FiltroEntrenadores{})

	status, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apperror.MensajeErrorInterno, msg)
}

func TestActualizar_NoChangesIsSuccess(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()
	esperado := &domain.ResultadoOperacion{Mensaje: "No se especificaron cambios para el entrenador.", EntrenadorID: entrenadorID}

	repo.On("Actualizar", ctx, entrenadorID, domain.ActualizacionEntrenador{}).Return(esperado, nil).Once()

	res, err := svc.Actualizar(ctx, entrenadorID, domain.ActualizacionEntrenador{})

	require.NoError(t, err)
	assert.Equal(t, "No se especificaron cambios para el entrenador.", res.Mensaje)
}

func TestActualizar_UnknownIDIsNotFound(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()
	pqErr := &pq.Error{Code: "P0002", Message: "Entrenador con ID " + entrenadorID + " no encontrado."}

	repo.On("Actualizar", ctx, entrenadorID, mock.Anything).Return(nil, pqErr).Once()

	_, err := svc.Actualizar(ctx, entrenadorID, domain.ActualizacionEntrenador{})

	var notFound *apperror.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Message(), "no encontrado")
}

func TestDesactivar(t *testing.T) {
	tests := []struct {
		name       string
		resultado  *domain.ResultadoDesactivacion
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "éxito",
			resultado:  &domain.ResultadoDesactivacion{Mensaje: "Entrenador desactivado correctamente.", EntrenadorID: entrenadorID, Exito: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "ya inactivo",
			resultado:  &domain.ResultadoDesactivacion{Mensaje: "El entrenador ya se encuentra inactivo.", EntrenadorID: entrenadorID},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "El entrenador ya se encuentra inactivo.",
		},
		{
			name:       "no existe",
			resultado:  &domain.ResultadoDesactivacion{Mensaje: "Entrenador no encontrado."},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Entrenador no encontrado.",
		},
		{
			name:       "sin mensaje",
			resultado:  &domain.ResultadoDesactivacion{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    entrenadorservice.MsgDesactivacionFallida,
		},
		{
			name:       "sin filas",
			resultado:  nil,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    entrenadorservice.MsgSinResultadoDesactivar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setup()
			ctx := context.Background()
			repo.On("Desactivar", ctx, entrenadorID).Return(tt.resultado, nil).Once()

			res, err := svc.Desactivar(ctx, entrenadorID)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.True(t, res.Exito)
				return
			}
			assert.Nil(t, res)
			status, _, msg := apperror.MapToHTTPStatus(err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestDesactivar_InactiveCarriesExitoFalse(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("Desactivar", ctx, entrenadorID).
		Return(&domain.ResultadoDesactivacion{Mensaje: "El entrenador ya se encuentra inactivo."}, nil).Once()

	_, err := svc.Desactivar(ctx, entrenadorID)

	var appErr apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, map[string]interface{}{"entrenadorId": entrenadorID, "exito": false}, appErr.Details())
}
