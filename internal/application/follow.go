package application

import (
	"context"
	"errors"

	"github.com/radenmas/socialite-api/internal/domain/entity"
	repo "github.com/radenmas/socialite-api/internal/domain/repository"
	"github.com/radenmas/socialite-api/pkg/apperr"
)

// Follow creates the edge "followerID follows <username>".
// Following yourself is rejected; an unknown target is a 404.
func (s *Service) Follow(ctx context.Context, followerID, username string) (*entity.UserView, error) {
	target, err := s.targetByUsername(username)
	if err != nil {
		return nil, err
	}
	if target.ID == followerID {
		return nil, apperr.New(apperr.BadRequest, "you cannot follow yourself")
	}
	if err := s.Followers.Follow(followerID, target.ID); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	view := target.View()
	return &view, nil
}

// Unfollow removes the edge if present. Removing an absent edge is a no-op.
func (s *Service) Unfollow(ctx context.Context, followerID, username string) (*entity.UserView, error) {
	target, err := s.targetByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := s.Followers.Unfollow(followerID, target.ID); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	view := target.View()
	return &view, nil
}

// FollowersOf lists the users following <username>.
func (s *Service) FollowersOf(ctx context.Context, username string) ([]entity.UserView, error) {
	target, err := s.targetByUsername(username)
	if err != nil {
		return nil, err
	}
	users, err := s.Followers.Followers(target.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return views(users), nil
}

// FollowingOf lists the users <username> follows.
func (s *Service) FollowingOf(ctx context.Context, username string) ([]entity.UserView, error) {
	target, err := s.targetByUsername(username)
	if err != nil {
		return nil, err
	}
	users, err := s.Followers.Following(target.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return views(users), nil
}

func (s *Service) targetByUsername(username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "record not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	return u, nil
}

func views(users []*entity.User) []entity.UserView {
	out := make([]entity.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, u.View())
	}
	return out
}
