package dto

type CreateTipoConsultaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion" validate:"omitempty"`
	Precio      string `json:"precio" validate:"omitempty"`
}

type TipoConsultaResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Precio      string `json:"precio"`
}
