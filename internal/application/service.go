package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/radenmas/socialite-api/internal/domain/repository"
	"github.com/radenmas/socialite-api/pkg/helpers"
)

// ImageUploader stores an uploaded profile image and returns its public path.
type ImageUploader interface {
	Upload(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error)
}

// Service orchestrates the credential and identity lifecycle: registration,
// login, profile mutation and the follower graph. It owns no persistent
// state of its own; everything durable lives behind the repositories.
type Service struct {
	Repo         repo.UserRepository
	Followers    repo.FollowerRepository
	JWT          *helpers.JWTManager
	Uploader     ImageUploader
	Redis        *redis.Client
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESUsersIndex string
	Pub          *helpers.RabbitPublisher
	MailEnabled  bool
}

func NewService(userRepo repo.UserRepository, followerRepo repo.FollowerRepository, jwt *helpers.JWTManager, uploader ImageUploader, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esUsersIndex string, pub *helpers.RabbitPublisher, mailEnabled bool) *Service {
	return &Service{
		Repo:         userRepo,
		Followers:    followerRepo,
		JWT:          jwt,
		Uploader:     uploader,
		Redis:        rdb,
		Logger:       logger,
		ES:           es,
		ESUsersIndex: esUsersIndex,
		Pub:          pub,
		MailEnabled:  mailEnabled,
	}
}

const sessionTTL = 24 * time.Hour

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// GCSUploader implements ImageUploader on top of Google Cloud Storage.
type GCSUploader struct {
	Client *storage.Client
	Bucket string
}

func (g *GCSUploader) Upload(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("images", userID, id+ext))
	return helpers.UploadImageToGCS(ctx, g.Client, g.Bucket, objectPath, contentType, r)
}
