package services

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// AttachmentService uploads RFP/invoice attachments to an S3-compatible
// object store and hands back the public URL the record stores.
type AttachmentService struct {
	s3Client *s3.S3
	bucket   string
	baseURL  string
}

func NewAttachmentService() (*AttachmentService, error) {
	region := os.Getenv("S3_REGION")
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")

	if region == "" || endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("missing required S3 configuration environment variables")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(region),
		Endpoint:         aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &AttachmentService{
		s3Client: s3.New(sess),
		bucket:   bucket,
		baseURL:  os.Getenv("S3_PUBLIC_URL"),
	}, nil
}

// Attachment is what the upload endpoint returns and what RFP/invoice
// payloads carry.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Upload stores the file under a timestamped key and returns its name and
// public URL.
func (s *AttachmentService) Upload(file multipart.File, header *multipart.FileHeader) (*Attachment, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[Upload] Error reading file %s: %v", header.Filename, err)
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("%d-%s", time.Now().Unix(), header.Filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(header.Header.Get("Content-Type")),
	}
	if _, err := s.s3Client.PutObject(input); err != nil {
		log.Printf("[Upload] S3 upload error for %s: %v", key, err)
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
	log.Printf("[Upload] Attachment stored at: %s", url)
	return &Attachment{Name: header.Filename, URL: url}, nil
}
