package domain

import "context"

// Facultad es una fila del catálogo de facultades.
type Facultad struct {
	ID     string `json:"id" example:"b3a5f1e2-0c4d-4f6a-8e9b-1a2b3c4d5e6f"`
	Nombre string `json:"nombre" example:"Ingeniería"`
}

// TipoDocumento es una fila del catálogo de tipos de documento.
type TipoDocumento struct {
	ID     string `json:"id" example:"1"`
	Sigla  string `json:"sigla" example:"CC"`
	Nombre string `json:"nombre" example:"Cédula de ciudadanía"`
}

// CatalogoRepository expone las vistas de datos de referencia.
type CatalogoRepository interface {
	ListarFacultades(ctx context.Context) ([]Facultad, error)
	ListarTiposDocumento(ctx context.Context) ([]TipoDocumento, error)
}
