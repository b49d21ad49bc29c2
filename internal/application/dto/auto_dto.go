package dto

// CrearAutoRequest body para POST /api/autos.
type CrearAutoRequest struct {
	Marca       string `json:"marca" validate:"required"`
	Modelo      string `json:"modelo" validate:"required"`
	Anio        int    `json:"anio" validate:"required,gte=1950"`
	Kilometraje int    `json:"kilometraje" validate:"gte=0"`
	NroPatente  string `json:"nro_patente" validate:"required"`
}

// ActualizarAutoRequest body para PUT /api/autos/{id}.
type ActualizarAutoRequest struct {
	Marca       string `json:"marca" validate:"required"`
	Modelo      string `json:"modelo" validate:"required"`
	Anio        int    `json:"anio" validate:"required,gte=1950"`
	Kilometraje int    `json:"kilometraje" validate:"gte=0"`
	NroPatente  string `json:"nro_patente" validate:"required"`
}

// AutoResponse representación JSON de un vehículo.
type AutoResponse struct {
	ID          int64  `json:"id"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Anio        int    `json:"anio"`
	Kilometraje int    `json:"kilometraje"`
	NroPatente  string `json:"nro_patente"`
	Activo      bool   `json:"activo"`
}
