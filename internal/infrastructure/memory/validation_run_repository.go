// Package memory repositorio en memoria para ejecutar el servicio sin base de datos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/repository"
)

var _ repository.ValidationRunRepository = (*ValidationRunRepo)(nil)

// ValidationRunRepo guarda las ejecuciones en un mapa protegido por RWMutex.
type ValidationRunRepo struct {
	mu   sync.RWMutex
	runs map[string]*entity.ValidationRun
}

// NewValidationRunRepository repositorio vacío.
func NewValidationRunRepository() *ValidationRunRepo {
	return &ValidationRunRepo{runs: make(map[string]*entity.ValidationRun)}
}

func (r *ValidationRunRepo) Create(_ context.Context, run *entity.ValidationRun) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: ejecución sin id", domain.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[run.ID]; ok {
		return fmt.Errorf("%w: ejecución %s ya registrada", domain.ErrInvalidInput, run.ID)
	}
	r.runs[run.ID] = clone(run)
	return nil
}

func (r *ValidationRunRepo) GetByID(_ context.Context, id string) (*entity.ValidationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, nil
	}
	return clone(run), nil
}

// List más recientes primero, sin tablas ni issues (igual que la versión PostgreSQL).
func (r *ValidationRunRepo) List(_ context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	all := make([]*entity.ValidationRun, 0, len(r.runs))
	for _, run := range r.runs {
		all = append(all, run)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]*entity.ValidationRun, 0, end-offset)
	for _, run := range all[offset:end] {
		c := *run
		c.Tables, c.Issues = nil, nil
		out = append(out, &c)
	}
	return out, nil
}

func clone(run *entity.ValidationRun) *entity.ValidationRun {
	c := *run
	c.Tables = append([]entity.TableResult(nil), run.Tables...)
	c.Issues = append([]entity.Issue(nil), run.Issues...)
	return &c
}
