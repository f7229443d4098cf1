package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/shared/constant"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// region is ignored by S3 compatible stores such as R2 and MinIO, but the SDK requires one.
const region = "auto"

// S3 stores store and service images in the configured bucket.
type S3 interface {
	// PutImage uploads under directory with a random name and returns the public URL.
	PutImage(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (url string, err error)
	// RemoveByURL deletes the object behind a URL returned by PutImage. Foreign URLs are ignored.
	RemoveByURL(ctx context.Context, url string) error
}

type bucket struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(settings.APIEndpoint)
		o.UsePathStyle = true
	})

	log.Info().Str("bucket", settings.BucketName).Str("endpoint", settings.APIEndpoint).Msg("Object storage client initialized")

	return &bucket{client: client, cfg: cfg, otel: otel}
}

func (b *bucket) PutImage(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := path.Join(directory, uuid.NewString()+strings.ToLower(path.Ext(header.Filename)))

	scope.SetAttributes(map[string]any{
		"bucket":     b.cfg.External.S3.BucketName,
		"object_key": key,
		"size":       header.Size,
	})

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.cfg.External.S3.BucketName),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(header.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(header.Size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload image")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return PublicURL(b.cfg, key), nil
}

func (b *bucket) RemoveByURL(ctx context.Context, url string) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".RemoveByURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := ObjectKey(b.cfg, url)
	if key == constant.Empty {
		log.Warn().Str("url", url).Msg("image is not in the bucket, nothing to delete")

		return nil
	}

	scope.SetAttribute("object_key", key)

	_, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.cfg.External.S3.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", key, err)
	}

	return nil
}

// PublicURL is the address clients load key from.
func PublicURL(cfg *config.Config, key string) string {
	return strings.TrimSuffix(cfg.External.S3.PublicDomain, "/") + "/" + key
}

// ObjectKey inverts PublicURL. It also accepts path style API URLs of the bucket and returns ""
// for anything else.
func ObjectKey(cfg *config.Config, url string) string {
	settings := cfg.External.S3

	prefixes := []string{
		strings.TrimSuffix(settings.PublicDomain, "/") + "/",
		strings.TrimSuffix(settings.APIEndpoint, "/") + "/" + settings.BucketName + "/",
	}

	for _, prefix := range prefixes {
		if prefix == "/" || strings.HasPrefix(prefix, "//") {
			continue
		}

		if key, found := strings.CutPrefix(url, prefix); found && key != "" {
			return key
		}
	}

	return constant.Empty
}
