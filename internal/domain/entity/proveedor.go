package entity

// Proveedor representa un proveedor de repuestos e insumos.
// La baja es lógica: Activo pasa a false y RazonBaja guarda el motivo.
type Proveedor struct {
	ID        int64
	Nombre    string
	CUIL      string
	Email     string
	Direccion string
	Telefono  string
	Activo    bool
	RazonBaja string
}
