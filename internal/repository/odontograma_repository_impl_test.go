package repository_test

import (
	"testing"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// Posting the same pieza twice must go through a single upsert
// statement so the unique index over (paciente_id, pieza_dental) keeps
// one row per pieza instead of rejecting the second write.
func TestOdontogramaRepository_UpsertSingleRowPerPieza(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewOdontogramaRepository()

	mock.ExpectExec("INSERT INTO `odontograma` (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// MySQL reports 2 affected rows when the duplicate-key branch fires.
	mock.ExpectExec("INSERT INTO `odontograma` (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 2))

	pieza := &entity.Odontograma{PacienteID: 4, PiezaDental: "18", Estado: "caries"}
	require.NoError(t, repo.Upsert(db, pieza))

	pieza.Estado = "obturada"
	require.NoError(t, repo.Upsert(db, pieza))

	require.NoError(t, mock.ExpectationsWereMet())
}
