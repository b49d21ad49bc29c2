package dto

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	CUIL      string `json:"cuil" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/modificar-proveedor/{id}.
type ActualizarProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	CUIL      string `json:"cuil" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
}

// InactivarProveedorRequest body para PUT /api/proveedores/{id}/inactivo.
type InactivarProveedorRequest struct {
	RazonBaja string `json:"razon_baja" validate:"required"`
}

// ProveedorResponse representación JSON de un proveedor.
type ProveedorResponse struct {
	ID        int64  `json:"id_proveedor"`
	Nombre    string `json:"nombre"`
	CUIL      string `json:"cuil"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
	RazonBaja string `json:"razon_baja,omitempty"`
}
