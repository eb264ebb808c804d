package dto

type CreateInventarioRequest struct {
	Nombre         string `json:"nombre" validate:"required,min=2"`
	Descripcion    string `json:"descripcion" validate:"omitempty"`
	Categoria      string `json:"categoria" validate:"omitempty"`
	StockActual    int    `json:"stock_actual" validate:"gte=0"`
	StockMinimo    int    `json:"stock_minimo" validate:"gte=0"`
	StockMaximo    int    `json:"stock_maximo" validate:"gte=0"`
	PrecioUnitario string `json:"precio_unitario" validate:"omitempty"`
}

// InventarioResponse carries the derived alert classification.
// nivel_alerta/tipo_alerta are computed per row at read time, never
// stored.
type InventarioResponse struct {
	ID             uint   `json:"id"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion,omitempty"`
	Categoria      string `json:"categoria,omitempty"`
	StockActual    int    `json:"stock_actual"`
	StockMinimo    int    `json:"stock_minimo"`
	StockMaximo    int    `json:"stock_maximo"`
	PrecioUnitario string `json:"precio_unitario"`
	NivelAlerta    string `json:"nivel_alerta"`
	TipoAlerta     string `json:"tipo_alerta"`
}

type InventarioListResponse struct {
	Items []InventarioResponse `json:"items"`
	Total int64                `json:"total"`
}
