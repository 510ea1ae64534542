package user

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"slices"

	"github.com/ferdiebergado/userhub/internal/pkg/errorx"
	"github.com/ferdiebergado/userhub/internal/pkg/message"
	"github.com/ferdiebergado/userhub/internal/pkg/web"
)

type Service interface {
	NewUser(ctx context.Context, userName string) (User, error)
	Save(ctx context.Context, u User) (User, error)
	SaveAll(ctx context.Context, users iter.Seq[User]) ([]User, error)
	GetAll(ctx context.Context) ([]User, error)
}

// Handler exposes the user service as named operations.
type Handler struct {
	svc Service
}

type UserData struct {
	ID   int64  `json:"id,omitempty" validate:"gte=0"`
	Name string `json:"name"`
}

type NewUserRequest struct {
	UserName string `json:"userName"`
}

type SaveRequest struct {
	User *UserData `json:"user" validate:"required"`
}

type SaveAllRequest struct {
	Users []UserData `json:"users" validate:"required,dive"`
}

func (h *Handler) NewUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[NewUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.NewUser(r.Context(), req.UserName)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := message.UserCreated
	web.RespondCreated(w, &msg, transformUser(u))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SaveRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Save(r.Context(), User{ID: req.User.ID, Name: req.User.Name})
	if err != nil {
		respondError(w, err)
		return
	}

	msg := message.UserSaved
	web.RespondOK(w, &msg, transformUser(u))
}

func (h *Handler) SaveAll(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SaveAllRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	users := func(yield func(User) bool) {
		for _, d := range req.Users {
			if !yield(User{ID: d.ID, Name: d.Name}) {
				return
			}
		}
	}

	saved, err := h.svc.SaveAll(r.Context(), users)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := message.UsersSaved
	web.RespondOK(w, &msg, transformUsers(saved))
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, transformUsers(users))
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		web.RespondBadRequest(w, err, message.EmptyUserName, nil)
	case errorx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

func transformUser(u User) *UserData {
	return &UserData{
		ID:   u.ID,
		Name: u.Name,
	}
}

func transformUsers(users []User) *[]UserData {
	data := make([]UserData, 0, len(users))
	for u := range slices.Values(users) {
		data = append(data, *transformUser(u))
	}
	return &data
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}
