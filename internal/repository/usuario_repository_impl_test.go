package repository_test

import (
	"testing"

	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUsuarioRepository_FindActiveByEmail_FiltersInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsuarioRepository()

	// The query must constrain on activo, so a deactivated account with
	// matching email yields no row and the caller sees (nil, nil).
	mock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE email = \\? AND activo = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	usuario, err := repo.FindActiveByEmail(db, "laura@clinica.mx")
	require.NoError(t, err)
	require.Nil(t, usuario)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_FindActiveByEmail_ReturnsActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsuarioRepository()

	rows := sqlmock.NewRows([]string{"id", "email", "rol", "activo"}).
		AddRow(3, "laura@clinica.mx", "Doctor", true)
	mock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE email = \\? AND activo = \\?").
		WillReturnRows(rows)

	usuario, err := repo.FindActiveByEmail(db, "laura@clinica.mx")
	require.NoError(t, err)
	require.NotNil(t, usuario)
	require.Equal(t, uint(3), usuario.ID)
	require.True(t, usuario.Activo)
	require.NoError(t, mock.ExpectationsWereMet())
}
