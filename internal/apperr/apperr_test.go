package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
)

func TestKindOf(t *testing.T) {
	type testCase struct {
		name string
		err  error
		want error
	}

	tests := []testCase{
		{name: "NotFound", err: apperr.NotFound("expense %s not found", "e1"), want: apperr.ErrNotFound},
		{name: "AccessDenied", err: apperr.AccessDenied("nope"), want: apperr.ErrAccessDenied},
		{name: "Conflict", err: apperr.Conflict("dup"), want: apperr.ErrConflict},
		{name: "Validation", err: apperr.Validation("bad"), want: apperr.ErrValidation},
		{name: "Wrapped", err: fmt.Errorf("creating settlement: %w", apperr.Conflict("dup")), want: apperr.ErrConflict},
		{name: "Unclassified", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.KindOf(tt.err))
		})
	}
}

func TestError_MessageNamesEntity(t *testing.T) {
	err := apperr.Validation("user %s is not a member of group %s", "u1", "g1")

	assert.Equal(t, "user u1 is not a member of group g1", err.Error())
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.NotErrorIs(t, err, apperr.ErrConflict)
}
