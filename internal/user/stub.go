package user

import (
	"context"
	"errors"
	"iter"
)

type StubService struct {
	NewUserFunc func(ctx context.Context, userName string) (User, error)
	SaveFunc    func(ctx context.Context, u User) (User, error)
	SaveAllFunc func(ctx context.Context, users iter.Seq[User]) ([]User, error)
	GetAllFunc  func(ctx context.Context) ([]User, error)
}

var _ Service = &StubService{}

func (s *StubService) NewUser(ctx context.Context, userName string) (User, error) {
	if s.NewUserFunc == nil {
		return User{}, errors.New("NewUser() not implemented by stub")
	}
	return s.NewUserFunc(ctx, userName)
}

func (s *StubService) Save(ctx context.Context, u User) (User, error) {
	if s.SaveFunc == nil {
		return User{}, errors.New("Save() not implemented by stub")
	}
	return s.SaveFunc(ctx, u)
}

func (s *StubService) SaveAll(ctx context.Context, users iter.Seq[User]) ([]User, error) {
	if s.SaveAllFunc == nil {
		return nil, errors.New("SaveAll() not implemented by stub")
	}
	return s.SaveAllFunc(ctx, users)
}

func (s *StubService) GetAll(ctx context.Context) ([]User, error) {
	if s.GetAllFunc == nil {
		return nil, errors.New("GetAll() not implemented by stub")
	}
	return s.GetAllFunc(ctx)
}

type StubRepo struct {
	SaveFunc    func(ctx context.Context, u User) (User, error)
	SaveAllFunc func(ctx context.Context, users []User) error
	FindAllFunc func(ctx context.Context) ([]User, error)
}

var _ Repository = &StubRepo{}

func (r *StubRepo) Save(ctx context.Context, u User) (User, error) {
	if r.SaveFunc == nil {
		return User{}, errors.New("Save() not implemented by stub")
	}
	return r.SaveFunc(ctx, u)
}

func (r *StubRepo) SaveAll(ctx context.Context, users []User) error {
	if r.SaveAllFunc == nil {
		return errors.New("SaveAll() not implemented by stub")
	}
	return r.SaveAllFunc(ctx, users)
}

func (r *StubRepo) FindAll(ctx context.Context) ([]User, error) {
	if r.FindAllFunc == nil {
		return nil, errors.New("FindAll() not implemented by stub")
	}
	return r.FindAllFunc(ctx)
}
