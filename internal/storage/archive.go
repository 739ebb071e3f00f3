package storage

import (
	"bytes"
	"context"
	"log"
	"time"

	"focusquote-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver keeps a copy of every generated quote PDF in S3-compatible
// storage (Cloudflare R2). Archiving is best-effort: failures are logged
// and never surfaced to the caller downloading the PDF.
type Archiver struct {
	client *s3.Client
	bucket string
}

// NewArchiver builds an archiver from config. Returns nil when archiving
// is not configured; callers treat a nil archiver as disabled.
func NewArchiver(cfg *config.Config) *Archiver {
	if !cfg.Archive.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		log.Printf("[Archive] Failed to configure storage client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})

	log.Printf("[Archive] PDF archiving enabled (bucket %s)", cfg.Archive.Bucket)
	return &Archiver{client: client, bucket: cfg.Archive.Bucket}
}

// Store uploads a PDF in the background. Safe to call on a nil archiver.
func (a *Archiver) Store(key string, data []byte) {
	if a == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/pdf"),
		})
		if err != nil {
			log.Printf("[Archive] Failed to upload %s: %v", key, err)
			return
		}
		log.Printf("[Archive] Stored %s (%d bytes)", key, len(data))
	}()
}
