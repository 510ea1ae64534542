package user

import (
	"context"
	"fmt"
	"sync"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps users in process memory. FindAll returns them in map
// order, which Go randomises.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int64]string
	lastID int64
}

func (r *MemoryRepository) Save(ctx context.Context, u User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, fmt.Errorf("%w: save user: %w", ErrPersistence, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(u), nil
}

func (r *MemoryRepository) SaveAll(ctx context.Context, users []User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: save %d users: %w", ErrPersistence, len(users), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range users {
		r.save(u)
	}
	return nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrPersistence, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for id, name := range r.users {
		users = append(users, User{ID: id, Name: name})
	}
	return users, nil
}

// save must be called with mu held.
func (r *MemoryRepository) save(u User) User {
	if _, ok := r.users[u.ID]; !ok || u.IsNew() {
		r.lastID++
		u.ID = r.lastID
	}
	r.users[u.ID] = u.Name
	return u
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[int64]string),
	}
}
