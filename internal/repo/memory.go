package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
)

// MemoryMaterialRepository serves the built-in seed set without a database.
// Used when DATABASE_URL is unset and throughout the tests.
type MemoryMaterialRepository struct {
	mu   sync.RWMutex
	mats map[string]material.Material
}

func NewMemoryMaterialDB(seed []material.Material) *MemoryMaterialRepository {
	r := &MemoryMaterialRepository{mats: make(map[string]material.Material, len(seed))}
	for _, m := range seed {
		r.mats[m.Name] = m
	}
	return r
}

func (r *MemoryMaterialRepository) List(ctx context.Context, category string) ([]material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []material.Material
	for _, m := range r.mats {
		if category == "" || m.Category == category {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryMaterialRepository) Get(ctx context.Context, name string) (material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mats[name]
	if !ok {
		return material.Material{}, fmt.Errorf("%w: %q", material.ErrNotFound, name)
	}
	return m, nil
}

func (r *MemoryMaterialRepository) ByNames(ctx context.Context, names []string) ([]material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []material.Material
	for _, name := range names {
		if m, ok := r.mats[name]; ok {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryMaterialRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []material.Material
	for _, m := range r.mats {
		all = append(all, m)
	}
	return material.CategoriesOf(all), nil
}

func (r *MemoryMaterialRepository) Create(ctx context.Context, m material.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.mats[m.Name]; exists {
		return fmt.Errorf("material %q already exists", m.Name)
	}
	r.mats[m.Name] = m
	return nil
}

func (r *MemoryMaterialRepository) Update(ctx context.Context, m material.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.mats[m.Name]; !exists {
		return fmt.Errorf("%w: %q", material.ErrNotFound, m.Name)
	}
	r.mats[m.Name] = m
	return nil
}

func (r *MemoryMaterialRepository) Upsert(ctx context.Context, m material.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mats[m.Name] = m
	return nil
}

// MemoryUserRepository keeps admin accounts in memory for database-less runs.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]memoryUser
}

type memoryUser struct {
	id   int
	hash string
}

func NewMemoryUserDB() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[string]memoryUser)}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[login]; exists {
		return 0, fmt.Errorf("user %q already exists", login)
	}
	id := r.nextID
	r.nextID++
	r.users[login] = memoryUser{id: id, hash: password}
	return id, nil
}

func (r *MemoryUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[login]
	if !ok {
		return 0, "", nil
	}
	return u.id, u.hash, nil
}
