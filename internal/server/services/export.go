package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/infrakeeper/internal/filex"
	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/netx"
	sc "github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToS3PresignedURL
)

// Snapshot is the export document. Credential passwords are redacted.
type Snapshot struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Catalog     *inventory.Catalog   `json:"catalog"`
	Credentials []*models.Credential `json:"credentials"`
	Notes       []*models.Note       `json:"notes"`
}

// ExportService writes inventory snapshots to S3 when a bucket is
// configured, otherwise to the local export directory.
type ExportService struct {
	catalog *inventory.Catalog
	repos   repomanager.RepositoryManager
	config  *sc.Config
	logger  logging.Logger
}

func NewExportService(c *inventory.Catalog, m repomanager.RepositoryManager, cfg *sc.Config, l logging.Logger) *ExportService {
	return &ExportService{catalog: c, repos: m, config: cfg, logger: l.With("module", "export")}
}

// GetRandomStorageKey returns a date-partitioned object key.
func GetRandomStorageKey(now time.Time) string {
	return fmt.Sprintf("exports/%d/%02d/%02d/%v.json", now.Year(), now.Month(), now.Day(), uuid.New())
}

// Snapshot reads credentials and notes in one transaction.
func (s *ExportService) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{GeneratedAt: time.Now().UTC(), Catalog: s.catalog}
	err := s.repos.WithTx(ctx, func(ctx context.Context, m repomanager.RepositoryManager) error {
		creds, err := m.Credentials().ListAll(ctx)
		if err != nil {
			return err
		}
		for _, c := range creds {
			c.Password = ""
		}
		snap.Credentials = creds

		snap.Notes, err = m.Notes().ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}
	return snap, nil
}

// Export stores a snapshot and returns where it went: an s3:// URI or a
// local path.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}

	key := GetRandomStorageKey(snap.GeneratedAt)
	var location string
	if s.config.S3Bucket != "" {
		location, err = s.upload(ctx, key, data)
	} else {
		location, err = s.writeLocal(key, data)
	}
	if err != nil {
		s.logger.Error(ctx, "Export failed", "error", err.Error())
		return "", err
	}
	s.logger.Info(ctx, "Export written", "location", location, "credentials", len(snap.Credentials), "notes", len(snap.Notes))
	return location, nil
}

func (s *ExportService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutUrl signs a PUT for key, valid for 15 minutes.
func (s *ExportService) GetPresignedPutUrl(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	contentType := "application/json"
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *ExportService) upload(ctx context.Context, key string, data []byte) (string, error) {
	url, err := s.GetPresignedPutUrl(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	if err := uploadToPresignedURL(ctx, url, data, "application/json"); err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", s.config.S3Bucket, key), nil
}

func (s *ExportService) writeLocal(key string, data []byte) (string, error) {
	dir, err := filex.EnsureDir(filepath.Join(s.config.ExportDir, filepath.Dir(key)))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(key))
	if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
