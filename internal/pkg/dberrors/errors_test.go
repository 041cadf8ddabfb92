package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgErr(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(pgErr("23503", "actor_netID_fkey")))
	assert.False(t, IsForeignKeyViolation(pgErr("23505", "")))
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgErr("23505", "student_pkey")))
	assert.False(t, IsUniqueViolation(pgErr("23503", "")))
}

func TestWrappedErrorsAreClassified(t *testing.T) {
	wrapped := fmt.Errorf("error adding actor: %w", pgErr("23503", "actor_netID_fkey"))
	assert.True(t, IsForeignKeyViolation(wrapped))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := pgErr("23505", "staff_email_key")
	assert.True(t, IsDuplicateConstraintError(err, "staff_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "student_pkey"))
	assert.False(t, IsDuplicateConstraintError(pgErr("23503", "staff_email_key"), "staff_email_key"))
}
