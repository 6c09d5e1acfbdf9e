package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"reputation/config"
)

type S3Storage struct {
	client *minio.Client
	cfg    config.S3Config
	logger *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента S3: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("бакет %s не найден", cfg.Bucket)
	}

	return newS3Storage(client, cfg, logger), nil
}

func newS3Storage(client *minio.Client, cfg config.S3Config, logger *zap.Logger) *S3Storage {
	return &S3Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// objectKey accepts either a bare object key or a full object URL
// (virtual-hosted or path style) and returns the key inside the bucket.
// URLs must point at the configured endpoint.
func (s *S3Storage) objectKey(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("пустая ссылка на фото")
	}

	if !strings.Contains(ref, "://") {
		return strings.TrimPrefix(ref, "/"), nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("некорректная ссылка на фото: %s", ref)
	}

	endpoint := s.endpointHost()
	host := strings.ToLower(u.Host)
	key := strings.TrimPrefix(u.Path, "/")
	switch host {
	case strings.ToLower(s.cfg.Bucket) + "." + endpoint:
	case endpoint:
		var found bool
		key, found = strings.CutPrefix(key, s.cfg.Bucket+"/")
		if !found {
			return "", fmt.Errorf("ссылка на фото указывает на чужой бакет: %s", ref)
		}
	default:
		return "", fmt.Errorf("ссылка на фото указывает на чужое хранилище: %s", ref)
	}

	if key == "" {
		return "", fmt.Errorf("некорректная ссылка на фото: %s", ref)
	}
	return key, nil
}

// endpointHost is the configured endpoint as host[:port], lower-cased.
func (s *S3Storage) endpointHost() string {
	endpoint := strings.ToLower(strings.TrimSpace(s.cfg.Endpoint))
	if strings.Contains(endpoint, "://") {
		if u, err := url.Parse(endpoint); err == nil {
			return u.Host
		}
	}
	return strings.TrimSuffix(endpoint, "/")
}

func (s *S3Storage) Exists(ctx context.Context, ref string) (bool, error) {
	key, err := s.objectKey(ref)
	if err != nil {
		s.logger.Debug("отклонена ссылка на фото", zap.String("ref", ref), zap.Error(err))
		return false, nil
	}

	_, err = s.client.StatObject(ctx, s.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("ошибка проверки фото в S3: %w", err)
	}

	return true, nil
}

func (s *S3Storage) PresignedURL(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	key, err := s.objectKey(ref)
	if err != nil {
		return "", err
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации пресайн URL: %w", err)
	}

	return presignedURL.String(), nil
}
