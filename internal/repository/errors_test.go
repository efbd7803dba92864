package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", sql.ErrNoRows, utils.ErrNotFound},
		{"wrapped no rows becomes not found", fmt.Errorf("query: %w", sql.ErrNoRows), utils.ErrNotFound},
		{
			"unique violation becomes conflict",
			&pq.Error{Code: "23505", Constraint: "uq_user_event"},
			utils.ErrConflict,
		},
		{
			"foreign key violation becomes invalid reference",
			&pq.Error{Code: "23503", Constraint: "daerah_provinsi_id_fkey"},
			utils.ErrInvalidReference,
		},
		{
			"check violation becomes invalid status",
			&pq.Error{Code: "23514", Constraint: "request_admin_daerah_status_check"},
			utils.ErrInvalidStatus,
		},
	}

	a := assert.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				a.NoError(got)
				return
			}
			a.True(errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestTranslateErrorUnknownPassesThrough(t *testing.T) {
	a := assert.New(t)

	connErr := errors.New("connection reset")
	a.Equal(connErr, translateError(connErr))

	otherPq := &pq.Error{Code: "42P01", Message: "relation does not exist"}
	a.Equal(error(otherPq), translateError(otherPq))
}
