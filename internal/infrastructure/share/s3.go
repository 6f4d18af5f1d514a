package share

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"ciao/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/exp/slog"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Sharer загружает документы в S3-совместимый бакет под ключом
// <prefix>/<yyyy>/<mm>/<dd>/<uuid>-<name>.
type S3Sharer struct {
	client objectPutter
	bucket string
	prefix string
	now    func() time.Time
	log    *slog.Logger
}

func NewS3Sharer(cfg config.S3, log *slog.Logger) (*S3Sharer, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	return newS3Sharer(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newS3Sharer(client objectPutter, bucket, prefix string, log *slog.Logger) *S3Sharer {
	return &S3Sharer{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
		log:    log.With("component", "s3_sharer"),
	}
}

func (s *S3Sharer) Share(ctx context.Context, doc Document) (string, error) {
	key := path.Join(s.prefix, s.now().Format("2006/01/02"), uuid.NewString()+"-"+doc.Name)

	info, err := s.client.PutObject(ctx, s.bucket, key, doc.Body, doc.Size, minio.PutObjectOptions{
		ContentType: ContentTypeCSV,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	location := "s3://" + s.bucket + "/" + info.Key
	s.log.Info("document uploaded", "location", location, "size", info.Size)
	return location, nil
}
