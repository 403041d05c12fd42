// Package storage guarda las imágenes de los departamentos en un bucket S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/paraisoverde/hotel-api/internal/application/usecase"
	"github.com/paraisoverde/hotel-api/pkg/config"
)

var _ usecase.AlmacenImagenes = (*S3Bucket)(nil)

// S3Bucket implementa usecase.AlmacenImagenes sobre un bucket de S3.
type S3Bucket struct {
	bucket  string
	baseURL string
	client  *s3.Client
}

// NewS3Bucket construye el cliente S3 con credenciales estáticas de la config.
func NewS3Bucket(ctx context.Context, cfg config.S3Config) (*S3Bucket, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración AWS: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Bucket{
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  s3.NewFromConfig(awsCfg),
	}, nil
}

// Subir sube el contenido bajo la clave dada y devuelve la URL pública.
func (b *S3Bucket) Subir(ctx context.Context, clave string, contenido []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(clave),
		Body:   bytes.NewReader(contenido),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := b.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3: subir objeto: %w", err)
	}
	return b.baseURL + "/" + clave, nil
}

// Eliminar borra el objeto; borrar una clave inexistente no es error en S3.
func (b *S3Bucket) Eliminar(ctx context.Context, clave string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(clave),
	})
	if err != nil {
		return fmt.Errorf("s3: eliminar objeto: %w", err)
	}
	return nil
}
