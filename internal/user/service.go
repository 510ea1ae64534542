package user

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
)

// Repository is the persistence capability the user service depends on.
type Repository interface {
	// Save inserts u when it is new or unknown to the store, otherwise updates it,
	// and returns the persisted copy.
	Save(ctx context.Context, u User) (User, error)
	// SaveAll persists every user in one atomic step.
	SaveAll(ctx context.Context, users []User) error
	// FindAll returns every stored user in no particular order.
	FindAll(ctx context.Context) ([]User, error)
}

// service is the implementation of the user Service interface.
type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

// NewUser creates and stores a user called userName.
func (s *service) NewUser(ctx context.Context, userName string) (User, error) {
	if err := validateUserName(userName); err != nil {
		return User{}, err
	}

	return s.repo.Save(ctx, User{Name: userName})
}

// Save stores u, updating the record with the same ID when one exists.
func (s *service) Save(ctx context.Context, u User) (User, error) {
	if err := validateUserName(u.Name); err != nil {
		return User{}, err
	}

	return s.repo.Save(ctx, u)
}

// SaveAll validates every user in iteration order, stores the batch and returns the
// complete listing. users is consumed exactly once; nothing is stored if any name is
// invalid.
func (s *service) SaveAll(ctx context.Context, users iter.Seq[User]) ([]User, error) {
	var batch []User
	for u := range users {
		if err := validateUserName(u.Name); err != nil {
			return nil, fmt.Errorf("user at index %d: %w", len(batch), err)
		}
		batch = append(batch, u)
	}

	if err := s.repo.SaveAll(ctx, batch); err != nil {
		return nil, err
	}

	return s.GetAll(ctx)
}

// GetAll returns every user ordered by ascending ID.
func (s *service) GetAll(ctx context.Context) ([]User, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(found))
	copy(users, found)
	slices.SortStableFunc(users, func(a, b User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return users, nil
}

func validateUserName(userName string) error {
	if userName == "" {
		return ErrInvalidArgument
	}
	return nil
}

func NewService(repo Repository) *service {
	return &service{
		repo: repo,
	}
}
