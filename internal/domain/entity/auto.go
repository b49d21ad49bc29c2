package entity

// Auto es un vehículo de la flota. Baja lógica vía Activo.
type Auto struct {
	ID          int64
	Marca       string
	Modelo      string
	Anio        int
	Kilometraje int
	NroPatente  string
	Activo      bool
}
