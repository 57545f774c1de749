package application

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/radenmas/socialite-api/internal/domain/entity"
	repo "github.com/radenmas/socialite-api/internal/domain/repository"
	"github.com/radenmas/socialite-api/pkg/apperr"
	"github.com/radenmas/socialite-api/pkg/helpers"
	"github.com/radenmas/socialite-api/pkg/mailer"
	"github.com/radenmas/socialite-api/pkg/validation"
)

// RegisterInput is the candidate record for registration. Field constraints
// mirror the user schema: username 3-20 chars, valid unique email, image URL
// well-formed when present.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,uname"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Bio       string `json:"bio" validate:"-"`
	ImagePath string `json:"image" validate:"omitempty,url"`
}

// Register validates the candidate, hashes the password and creates the user.
// On success the returned view carries a fresh identity token and never the hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.UserView, error) {
	if details := validation.Struct(in); details != nil {
		return nil, apperr.NewValidation(details)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Conflict, err)
	}

	u := &entity.User{
		Username:  in.Username,
		Email:     in.Email,
		Hash:      hash,
		Bio:       in.Bio,
		ImagePath: in.ImagePath,
	}
	if err := s.Repo.Create(u); err != nil {
		var uv *repo.UniqueViolationError
		if errors.As(err, &uv) {
			msgs := make([]string, 0, len(uv.Fields))
			for _, f := range uv.Fields {
				msgs = append(msgs, f+" already exists")
			}
			return nil, &apperr.Error{Kind: apperr.Conflict, Messages: msgs}
		}
		// any other creation failure keeps the conflict status with the raw
		// message, matching the previous behavior of this endpoint
		return nil, apperr.Wrap(apperr.Conflict, err)
	}

	token, err := s.JWT.Issue(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}

	s.indexUser(ctx, u)
	s.enqueueWelcome(ctx, u)

	view := u.View()
	view.Token = token
	return &view, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.UserView, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.BadRequest, "missing Email/Password")
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.BadRequest, "incorrect Email/Password")
		}
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	if !helpers.ComparePassword(u.Hash, password) {
		return nil, apperr.New(apperr.BadRequest, "incorrect Email/Password")
	}

	token, err := s.JWT.Issue(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}

	s.cacheProfile(ctx, u)

	view := u.View()
	view.Token = token
	return &view, nil
}

// UpdateProfileInput carries the mutable profile fields plus an optional
// uploaded image. Email is immutable and only used for the ownership check.
type UpdateProfileInput struct {
	Email            string
	Username         string
	Bio              string
	Image            io.Reader
	ImageName        string
	ImageContentType string
}

// UpdateProfile verifies the access token, loads the subject and overwrites
// username, bio and image path. The image path is always overwritten: when no
// file is attached it is reset to empty, clearing any previously stored image.
func (s *Service) UpdateProfile(ctx context.Context, token string, in UpdateProfileInput) (*entity.UserView, error) {
	claims, err := s.JWT.Verify(token)
	if err != nil {
		return nil, apperr.Wrap(apperr.Auth, err)
	}

	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "record not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err)
	}

	if in.Email != u.Email {
		return nil, apperr.New(apperr.Forbidden, "you cannot edit this entry")
	}

	imagePath := ""
	if in.Image != nil {
		imagePath, err = s.Uploader.Upload(ctx, u.ID, in.Image, in.ImageName, in.ImageContentType)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err)
		}
	}

	u.Username = in.Username
	u.Bio = in.Bio
	u.ImagePath = imagePath
	if err := s.Repo.Update(u); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err)
	}

	s.cacheProfile(ctx, u)
	s.indexUser(ctx, u)

	view := u.View()
	return &view, nil
}

// GetProfile returns the view of the user identified by id.
func (s *Service) GetProfile(userID string) (*entity.UserView, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "record not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err)
	}
	view := u.View()
	return &view, nil
}

// cacheProfile mirrors the latest profile into Redis with a 24h TTL.
// Failures only log; the cache is not load bearing.
func (s *Service) cacheProfile(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"image":      u.ImagePath,
		"updated_at": nowRFC3339(),
	})
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

// enqueueWelcome publishes the welcome-email job; best effort.
func (s *Service) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"Username": u.Username, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": u.ID}).Warn("welcome email enqueue failed")
	}
}
