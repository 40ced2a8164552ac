package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pgSerializationFailure, Message: "could not serialize access"}
}

func TestIsRetryable(t *testing.T) {
	sentinel := errors.New("storage failure")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"raw serialization failure", serializationFailure(), true},
		{"raw deadlock", &pq.Error{Code: pgDeadlockDetected}, true},
		{"other pq code", &pq.Error{Code: "23505"}, false},
		// The shapes the error actually arrives in: wrapped by run() at
		// commit time, or wrapped by a repository and a use case before
		// reaching the retry loop.
		{"commit wrap", fmt.Errorf("%w: commit: %w", ErrTransaction, serializationFailure()), true},
		{"double sentinel wrap", fmt.Errorf("%w: load: %w", sentinel, fmt.Errorf("exec: %w", serializationFailure())), true},
		{"flattened wrap", fmt.Errorf("%v: commit: %v", ErrTransaction, serializationFailure()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestDoSerializable_Commits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err = NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.True(t, IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// First attempt loses the serialization race at commit, the second
	// goes through.
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serializationFailure())
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err = NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesWrappedStatementFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	sentinel := errors.New("storage failure")

	calls := 0
	err = NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			// A repository-and-usecase wrapped serialization failure must
			// still be recognised by the retry loop.
			return fmt.Errorf("%w: load: %w", sentinel, serializationFailure())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterBoundedRetries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < maxSerializableRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(serializationFailure())
	}

	calls := 0
	err = NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, calls)
	assert.ErrorIs(t, err, ErrTransaction)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr), "the driver error survives the wrap")
	assert.Equal(t, pgSerializationFailure, string(pqErr.Code))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NonRetryableStopsImmediately(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("slot already taken")

	calls := 0
	err = NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
