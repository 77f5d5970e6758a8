package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/art?sslmode=disable", "pgx5://u:p@localhost:5432/art?sslmode=disable"},
		{"postgresql://u@db/art", "pgx5://u@db/art"},
		{"pgx5://u@db/art", "pgx5://u@db/art"},
		{"host=db user=u", "host=db user=u"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPgx5DSN(tt.in))
	}
}
