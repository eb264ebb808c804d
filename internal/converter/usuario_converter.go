package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// UsuarioToResponse converts a Usuario entity to UserResponse DTO.
// Credential columns never leave this layer.
func UsuarioToResponse(usuario *entity.Usuario) *dto.UserResponse {
	if usuario == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:               usuario.ID,
		Nombre:           usuario.Nombre,
		Apellidos:        usuario.Apellidos,
		Email:            usuario.Email,
		Rol:              usuario.Rol,
		Activo:           usuario.Activo,
		TwoFactorEnabled: usuario.TwoFactorEnabled,
		FechaCreacion:    usuario.FechaCreacion,
	}
}

// UsuariosToResponses converts a slice of Usuario entities to UserResponse DTOs
func UsuariosToResponses(usuarios []entity.Usuario) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(usuarios))
	for i, usuario := range usuarios {
		responses[i] = *UsuarioToResponse(&usuario)
	}
	return responses
}
