package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils"
)

// AllowImage lists the upload extensions accepted for scan images.
var AllowImage = []string{".jpg", ".jpeg", ".png"}

// SignedURLTTL is how long a presigned link stays valid.
const SignedURLTTL = time.Hour

type (
	AwsS3 interface {
		// UploadScanImage stores the image under the owner's namespace and
		// returns the object key.
		UploadScanImage(userID string, file *multipart.FileHeader) (string, error)
		// ResolveURL turns a stored reference into a fetchable URL. Absolute
		// URLs pass through unchanged; object keys get a presigned link,
		// falling back to the public URL if presigning fails.
		ResolveURL(ctx context.Context, ref string) string
		GetPublicLinkKey(objectKey string) string
		DeleteFile(objectKey string) error
	}

	objectAPI interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	presignAPI interface {
		PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4PresignedRequest, error)
	}

	awsS3 struct {
		client    objectAPI
		presigner presignAPI
		bucket    string
		region    string
	}
)

// v4PresignedRequest mirrors the fields we consume from the SDK's
// PresignedHTTPRequest so stubs stay small.
type v4PresignedRequest struct {
	URL string
}

type sdkPresigner struct {
	inner *s3.PresignClient
}

func (p *sdkPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4PresignedRequest, error) {
	req, err := p.inner.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &v4PresignedRequest{URL: req.URL}, nil
}

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &awsS3{
		client:    client,
		presigner: &sdkPresigner{inner: s3.NewPresignClient(client)},
		bucket:    utils.GetConfig("AWS_S3_BUCKET"),
		region:    region,
	}
}

func (a *awsS3) UploadScanImage(userID string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(ext) {
		return "", fmt.Errorf("file extension %q not allowed", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(ext)),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) ResolveURL(ctx context.Context, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(ref),
	}, func(o *s3.PresignOptions) {
		o.Expires = SignedURLTTL
	})
	if err != nil {
		log.Printf("presign failed for %s, falling back to public URL: %v", ref, err)
		return a.GetPublicLinkKey(ref)
	}

	return req.URL
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func extAllowed(ext string) bool {
	for _, allowed := range AllowImage {
		if ext == allowed {
			return true
		}
	}
	return false
}

func contentTypeFor(ext string) string {
	if ext == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}
