package errors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeUnavailable, "backend call failed")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, "backend call failed: boom", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsConflict(Conflict("clash")))
	assert.True(t, IsValidation(ValidationField("price", "must be positive")))
	assert.True(t, IsUnauthorized(Unauthorized("nope")))
	assert.False(t, IsUnauthorized(NotFound("missing")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestGetField(t *testing.T) {
	assert.Equal(t, "price", GetField(ValidationField("price", "bad")))
	assert.Empty(t, GetField(errors.New("plain")))
}

func TestFromStatus(t *testing.T) {
	assert.Equal(t, ErrCodeUnauthorized, FromStatus(http.StatusUnauthorized, "").Code)
	assert.Equal(t, ErrCodeUnauthorized, FromStatus(http.StatusForbidden, "").Code)
	assert.Equal(t, ErrCodeNotFound, FromStatus(http.StatusNotFound, "").Code)
	assert.Equal(t, ErrCodeConflict, FromStatus(http.StatusConflict, "").Code)
	assert.Equal(t, ErrCodeValidation, FromStatus(http.StatusBadRequest, "").Code)
	assert.Equal(t, ErrCodeUnavailable, FromStatus(http.StatusBadGateway, "").Code)
	assert.Equal(t, ErrCodeTimeout, FromStatus(http.StatusGatewayTimeout, "").Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(Conflict("transition")))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(Unauthorized("no")))
	assert.Equal(t, http.StatusBadGateway, StatusFor(&AppError{Code: ErrCodeTokenRetrieval, Message: "idp down"}))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("plain")))
}

func TestMapDBError(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
	assert.True(t, IsNotFound(MapDBError(pgx.ErrNoRows)))
	assert.True(t, IsConflict(MapDBError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.True(t, IsValidation(MapDBError(&pgconn.PgError{Code: pgerrcode.CheckViolation})))
	assert.Equal(t, ErrCodeTimeout, GetCode(MapDBError(context.DeadlineExceeded)))

	plain := errors.New("something else")
	assert.Equal(t, plain, MapDBError(plain))
}
