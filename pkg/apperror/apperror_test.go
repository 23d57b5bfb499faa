package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/pagination/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

type domainErr struct{}

func (domainErr) Error() string             { return "domain" }
func (domainErr) AppError() *apperror.Error { return apperror.NotFound("gone") }

func TestAs(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantOK   bool
		wantKind apperror.Kind
	}{
		{"nil", nil, false, 0},
		{"plain", errors.New("boom"), false, 0},
		{"direct", apperror.ValidationField("page", "bad"), true, apperror.KindValidationField},
		{"wrapped", fmt.Errorf("ctx: %w", apperror.Internal("x")), true, apperror.KindInternal},
		{"converter", fmt.Errorf("ctx: %w", domainErr{}), true, apperror.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ae, ok := apperror.As(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantKind, ae.Kind)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "validation failed: page - bad", apperror.ValidationField("page", "bad").Error())
	assert.Equal(t, "boom", apperror.Internal("boom").Error())
	assert.Equal(t, 400, apperror.ValidationField("f", "m").StatusCode())
	assert.Equal(t, 404, apperror.NotFound("m").StatusCode())
	assert.Equal(t, 500, apperror.Internal("m").StatusCode())
}
