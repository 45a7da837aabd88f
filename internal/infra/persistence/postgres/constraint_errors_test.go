package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm translated duplicate key",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped gorm duplicate key",
			err:  errors.Wrap(gorm.ErrDuplicatedKey, "failed to create store"),
			want: true,
		},
		{
			name: "postgres duplicate key message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "uniq_stores_normalized_identity" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "sqlstate code only",
			err:  errors.New("pq: 23505"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "postgres not null message",
			err:  errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			want: true,
		},
		{
			name: "sqlstate code only",
			err:  errors.New("pq: 23502"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "duplicate key is not a null violation",
			err:  gorm.ErrDuplicatedKey,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}
