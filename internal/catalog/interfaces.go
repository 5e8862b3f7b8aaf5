package catalog

import (
	"context"

	"github.com/decentraestate/marketd/internal/models"
)

// Source provides the full property list from somewhere (a listings backend,
// the built-in seed data).
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Property, error)
}

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}
