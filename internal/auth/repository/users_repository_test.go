package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/testutil"
)

func TestUsersRepository_InsertAndFindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUsersRepository(db)

	user := domain.User{
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleCustomer,
	}
	id, err := repo.Insert(context.Background(), &user)
	require.NoError(t, err)
	assert.NotZero(t, id)

	found, err := repo.FindByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", found.PasswordHash)
	assert.Equal(t, domain.RoleCustomer, found.Role)
}

func TestUsersRepository_Insert_DuplicateEmailConflicts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUsersRepository(db)

	_, err := repo.Insert(context.Background(), &domain.User{
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), &domain.User{
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$vutsrqponmlkjihgfedcba",
		Role:         domain.RoleCustomer,
	})

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "expected ConflictError, got %v", err)
}

func TestUsersRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUsersRepository(db)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestUsersRepository_ExistsByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUsersRepository(db)

	exists, err := repo.ExistsByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Insert(context.Background(), &domain.User{
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)

	exists, err = repo.ExistsByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
