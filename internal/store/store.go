// Package store provides data access for reports.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bryan-cox/reportledger/internal/model"
)

// ErrNotFound is returned when no report has the requested id.
var ErrNotFound = errors.New("report not found")

// Repository is the set of report operations the commands depend on.
type Repository interface {
	List(ctx context.Context) ([]model.Report, error)
	Get(ctx context.Context, id int) (model.Report, error)
	Create(ctx context.Context, r model.Report) (model.Report, error)
	Update(ctx context.Context, r model.Report) (model.Report, error)
	Delete(ctx context.Context, id int) error
}

// Memory is an in-memory Repository. It is safe for concurrent use and keeps
// reports in insertion order.
type Memory struct {
	mu      sync.RWMutex
	reports []model.Report
	nextID  int
}

var _ Repository = (*Memory)(nil)

// NewMemory returns a repository seeded with reports. Seeded ids are kept;
// ids assigned by Create start after the highest seeded id.
func NewMemory(reports ...model.Report) *Memory {
	m := &Memory{reports: slices.Clone(reports), nextID: 1}
	for _, r := range reports {
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

// List returns a copy of every report.
func (m *Memory) List(ctx context.Context) ([]model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.reports), nil
}

// Get returns the report with the given id.
func (m *Memory) Get(ctx context.Context, id int) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.index(id)
	if i < 0 {
		return model.Report{}, fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	return m.reports[i], nil
}

// Create stores r under a newly assigned id, ignoring r.ID.
func (m *Memory) Create(ctx context.Context, r model.Report) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextID
	m.nextID++
	m.reports = append(m.reports, r)
	return r, nil
}

// Update replaces the stored report having r.ID with r.
func (m *Memory) Update(ctx context.Context, r model.Report) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(r.ID)
	if i < 0 {
		return model.Report{}, fmt.Errorf("report %d: %w", r.ID, ErrNotFound)
	}
	m.reports[i] = r
	return r, nil
}

// Delete removes the report with the given id.
func (m *Memory) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	m.reports = slices.Delete(m.reports, i, i+1)
	return nil
}

// index returns the position of id, or -1. Callers hold m.mu.
func (m *Memory) index(id int) int {
	return slices.IndexFunc(m.reports, func(r model.Report) bool { return r.ID == id })
}
