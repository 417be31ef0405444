package repository

import (
	"context"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

// ValidationRunRepository persistencia de las ejecuciones de validación.
type ValidationRunRepository interface {
	Create(ctx context.Context, run *entity.ValidationRun) error
	// GetByID devuelve nil, nil si la ejecución no existe.
	GetByID(ctx context.Context, id string) (*entity.ValidationRun, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error)
}
