package repository_test

import (
	"testing"
	"time"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestCitaRepository_UpdateEstado_TerminalClearsSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCitaRepository()

	mock.ExpectExec("UPDATE `citas` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateEstado(db, 10, entity.CitaEnProceso, entity.CitaCompletada)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCitaRepository_UpdateEstado_ZeroRowsWhenEstadoMoved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCitaRepository()

	mock.ExpectExec("UPDATE `citas` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateEstado(db, 10, entity.CitaProgramada, entity.CitaConfirmada)
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCitaRepository_Cancel_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCitaRepository()

	mock.ExpectExec("UPDATE `citas` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `citas` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Cancel(db, 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	affected, err = repo.Cancel(db, 5)
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCitaRepository_SweepNoShows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCitaRepository()

	mock.ExpectExec("UPDATE `citas` SET").
		WillReturnResult(sqlmock.NewResult(0, 3))

	cutoff := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	affected, err := repo.SweepNoShows(db, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(3), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCitaRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCitaRepository()

	mock.ExpectQuery("SELECT (.+) FROM `citas`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	cita, err := repo.FindByID(db, 999)
	require.NoError(t, err)
	require.Nil(t, cita)
}
