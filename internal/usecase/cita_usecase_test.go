package usecase

import (
	"context"
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCitaUsecase_Reschedule_RejectsEnProceso(t *testing.T) {
	db, mock := newGormMock(t)
	u := NewCitaUsecase(db, logrus.New(),
		repository.NewCitaRepository(),
		repository.NewPacienteRepository(),
		repository.NewTipoConsultaRepository(),
		nil, nil)

	mock.ExpectBegin()
	rows := sqlmock.NewRows([]string{"id", "doctor_id", "fecha_cita", "hora_cita", "estado"}).
		AddRow(12, 5, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), "10:00", "En_Proceso")
	mock.ExpectQuery("SELECT (.+) FROM `citas`").WillReturnRows(rows)
	mock.ExpectRollback()

	_, err := u.Reschedule(context.Background(), 12, &dto.RescheduleCitaRequest{
		FechaConsulta:   "2025-03-15",
		HorarioConsulta: "11:00",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.NoError(t, mock.ExpectationsWereMet())
}
