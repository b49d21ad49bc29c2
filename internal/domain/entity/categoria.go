package entity

// Categoria agrupa productos y los vincula con el proveedor que los surte.
type Categoria struct {
	ID          int64
	Nombre      string
	ProveedorID int64
}
