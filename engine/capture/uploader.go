package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

const uploadTimeout = 10 * time.Second

// Uploader publishes captured frames to an S3-compatible bucket.
type Uploader struct {
	client *s3.S3
	bucket string
	prefix string
}

// NewUploaderFromEnv builds an uploader from CAPTURE_S3_* environment
// variables (a .env file in the working directory is honored). It
// returns (nil, nil) when CAPTURE_S3_BUCKET is unset: uploading is
// strictly opt-in.
func NewUploaderFromEnv() (*Uploader, error) {
	_ = godotenv.Load()

	bucket := os.Getenv("CAPTURE_S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	cfg := &aws.Config{
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("CAPTURE_S3_ACCESS_KEY"),
			os.Getenv("CAPTURE_S3_SECRET_KEY"),
			"",
		),
		Endpoint:         aws.String(os.Getenv("CAPTURE_S3_ENDPOINT")),
		Region:           aws.String(os.Getenv("CAPTURE_S3_REGION")),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}

	return &Uploader{
		client: s3.New(sess),
		bucket: bucket,
		prefix: os.Getenv("CAPTURE_S3_PREFIX"),
	}, nil
}

// Upload encodes img as PNG and puts it at prefix/key in the bucket.
func (u *Uploader) Upload(ctx context.Context, key string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	if u.prefix != "" {
		key = u.prefix + "/" + key
	}
	size := int64(buf.Len())
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	log.Printf("uploaded %s (%d bytes)", key, size)
	return nil
}
