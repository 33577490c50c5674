// Package minioconn implements describe.Connection on an S3-compatible
// object store. Each remote data object's describe document lives in a
// bucket as {prefix}{name}.desc.json; listing the bucket yields the object
// names, and fetching one key yields the full document.
package minioconn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	describe "github.com/WhiteAbeLincoln/sf-describe"
	"github.com/WhiteAbeLincoln/sf-describe/errors"
)

// Config holds the connection settings for an S3-compatible instance.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string

	// Prefix scopes all keys under a common key prefix. A trailing slash is
	// added if missing.
	Prefix string

	UseSSL bool
}

// Conn is a describe.Connection backed by an S3-compatible object store.
type Conn struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a connection from the given config.
func New(cfg Config) (*Conn, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("minioconn: endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("minioconn: access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("minioconn: bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("minioconn: init client: %w", err)
	}

	return &Conn{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(cfg.Prefix),
	}, nil
}

// ListObjectNames implements describe.Connection. It returns the names of
// all describe documents under the configured prefix, in the order the
// store listed them. Keys that don't carry the document suffix are skipped.
func (c *Conn) ListObjectNames(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    c.prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, errors.NewError("list", obj.Err)
		}
		name, ok := nameFromKey(obj.Key, c.prefix)
		if !ok {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Describe implements describe.Connection. It fetches and parses the
// describe document for one named object.
func (c *Conn) Describe(ctx context.Context, name string) (*describe.Document, error) {
	key := c.objectKey(name)
	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.NewPathError("describe", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil, errors.NewPathError("describe", name, errors.ErrObjectNotFound)
		}
		return nil, errors.NewPathError("describe", name, err)
	}
	return describe.ParseDocument(data)
}

// Upload stores a document under its computed key, overwriting any previous
// version. This is the push counterpart to Describe and is not part of the
// describe.Connection contract.
func (c *Conn) Upload(ctx context.Context, doc *describe.Document) error {
	body := doc.Bytes()
	_, err := c.client.PutObject(ctx, c.bucket, c.objectKey(doc.Name()),
		bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
	if err != nil {
		return errors.NewPathError("upload", doc.Name(), err)
	}
	return nil
}

// objectKey computes the store key for a named object.
func (c *Conn) objectKey(name string) string {
	return c.prefix + name + describe.FileSuffix
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}

// nameFromKey recovers the object name from a store key, or reports that the
// key is not a describe document.
func nameFromKey(key, prefix string) (string, bool) {
	rest := strings.TrimPrefix(key, prefix)
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	if !strings.HasSuffix(rest, describe.FileSuffix) {
		return "", false
	}
	return strings.TrimSuffix(rest, describe.FileSuffix), true
}
