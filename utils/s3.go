package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ImageStore uploads a data-URI image and returns the stored URL. The
// profile path depends on this interface so tests can substitute a fake
// instead of hitting S3.
type ImageStore interface {
	UploadBase64Image(base64Data, filenamePrefix string) (string, error)
}

type S3ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3ImageStore() (*S3ImageStore, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed for S3: %w", err)
	}

	return &S3ImageStore{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET"),
		region: region,
	}, nil
}

// UploadBase64Image stores a "data:<mime>;base64,<data>" image under
// profiles/<prefix>-<timestamp> and returns the public object URL.
func (s *S3ImageStore) UploadBase64Image(base64Data, filenamePrefix string) (string, error) {
	contentType, ext, imageData, err := decodeImageDataURI(base64Data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profiles/%s-%d%s", filenamePrefix, time.Now().Unix(), ext)

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// decodeImageDataURI splits a "data:<mime>;base64,<data>" payload into
// its content type, a file extension for the object key, and the raw
// image bytes.
func decodeImageDataURI(base64Data string) (contentType, ext string, imageData []byte, err error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", "", nil, fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	// "data:image/jpeg;base64" → "image/jpeg"
	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return "", "", nil, fmt.Errorf("invalid base64 image header")
	}
	contentType = strings.SplitN(mediaType[1], ";", 2)[0]

	exts, _ := mime.ExtensionsByType(contentType)
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else {
			sub := strings.SplitN(contentType, "/", 2)
			if len(sub) == 2 {
				ext = "." + sub[1]
			}
		}
	}

	imageData, err = base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, ext, imageData, nil
}
