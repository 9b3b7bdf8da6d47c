package directory

import (
	"errors"

	"carelink/models"
)

// ErrProviderNotFound is returned by FindByID for unknown provider IDs.
var ErrProviderNotFound = errors.New("provider not found")

// Directory is the read-only provider catalog. Implementations never mutate
// provider state as a side effect of queries; availability changes arrive
// only through the external scheduling feed.
type Directory interface {
	List() []models.Provider
	FindByID(id string) (*models.Provider, error)
}

// StaticDirectory serves a catalog seeded once at construction. List returns
// providers in insertion order.
type StaticDirectory struct {
	providers []models.Provider
	byID      map[string]int
}

// NewStaticDirectory builds a directory from the given providers. Later
// entries with a duplicate ID are dropped, keeping the first declaration.
func NewStaticDirectory(providers []models.Provider) *StaticDirectory {
	d := &StaticDirectory{
		byID: make(map[string]int, len(providers)),
	}
	for _, p := range providers {
		if _, exists := d.byID[p.ID]; exists {
			continue
		}
		d.byID[p.ID] = len(d.providers)
		d.providers = append(d.providers, p)
	}
	return d
}

// List returns the catalog in stable insertion order. The returned slice is a
// copy; callers cannot mutate the directory through it.
func (d *StaticDirectory) List() []models.Provider {
	out := make([]models.Provider, len(d.providers))
	copy(out, d.providers)
	return out
}

// FindByID returns the provider with the given ID or ErrProviderNotFound.
func (d *StaticDirectory) FindByID(id string) (*models.Provider, error) {
	idx, ok := d.byID[id]
	if !ok {
		return nil, ErrProviderNotFound
	}
	p := d.providers[idx]
	return &p, nil
}
