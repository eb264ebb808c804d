package dto

type CreateUsuarioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellidos string `json:"apellidos" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Rol       string `json:"rol" validate:"required,oneof=Administrador Doctor Secretaria"`
}

type UpdateUsuarioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellidos string `json:"apellidos" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Rol       string `json:"rol" validate:"required,oneof=Administrador Doctor Secretaria"`
	Password  string `json:"password" validate:"omitempty,min=8"`
}

type UsuarioListResponse struct {
	Usuarios []UserResponse `json:"usuarios"`
	Total    int64          `json:"total"`
}
