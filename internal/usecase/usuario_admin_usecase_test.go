package usecase

import (
	"context"
	"testing"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestUsuarioAdminUsecase_Update_DuplicateEmail(t *testing.T) {
	db, mock := newGormMock(t)
	u := NewUsuarioAdminUsecase(db, logrus.New(),
		repository.NewUsuarioRepository(), nil, nil)

	rows := sqlmock.NewRows([]string{"id", "nombre", "apellidos", "email", "rol", "activo"}).
		AddRow(3, "Laura", "Mendez", "laura@clinica.mx", "Doctor", true)
	mock.ExpectQuery("SELECT (.+) FROM `usuarios`").WillReturnRows(rows)
	mock.ExpectExec("UPDATE `usuarios` SET").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := u.Update(context.Background(), 3, &dto.UpdateUsuarioRequest{
		Nombre:    "Laura",
		Apellidos: "Mendez",
		Email:     "carlos@clinica.mx",
		Rol:       "Doctor",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}
