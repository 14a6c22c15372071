package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/hupe1980/kmeans/blobstore"
	minioblob "github.com/hupe1980/kmeans/blobstore/minio"
	s3blob "github.com/hupe1980/kmeans/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// sources routes input names to stores by scheme:
//
//	s3://bucket/key     Amazon S3 (default credential chain)
//	minio://bucket/key  MinIO (MINIO_ACCESS_KEY, MINIO_SECRET_KEY)
//	anything else       local file
type sources struct {
	cfg   *config
	local *blobstore.LocalStore

	mu          sync.Mutex
	s3Stores    map[string]*s3blob.Store
	minioClient *minio.Client
}

func newSources(cfg *config) *sources {
	return &sources{
		cfg:      cfg,
		local:    blobstore.NewLocalStore(""),
		s3Stores: make(map[string]*s3blob.Store),
	}
}

// Open implements blobstore.BlobStore.
func (s *sources) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	scheme, bucket, key, ok := splitURI(name)
	if !ok {
		return s.local.Open(ctx, name)
	}

	var store blobstore.BlobStore
	var err error
	switch scheme {
	case "s3":
		store, err = s.s3Store(ctx, bucket)
	case "minio":
		store, err = s.minioStore(bucket)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", scheme)
	}
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, key)
}

func (s *sources) s3Store(ctx context.Context, bucket string) (*s3blob.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.s3Stores[bucket]; ok {
		return st, nil
	}

	var opts []s3blob.Option
	if s.cfg.s3Region != "" {
		opts = append(opts, s3blob.WithRegion(s.cfg.s3Region))
	}
	if s.cfg.s3Endpoint != "" {
		opts = append(opts, s3blob.WithEndpoint(s.cfg.s3Endpoint))
	}

	st, err := s3blob.New(ctx, bucket, opts...)
	if err != nil {
		return nil, err
	}
	s.s3Stores[bucket] = st
	return st, nil
}

func (s *sources) minioStore(bucket string) (*minioblob.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.minioClient == nil {
		client, err := minio.New(s.cfg.minioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: s.cfg.minioSecure,
		})
		if err != nil {
			return nil, err
		}
		s.minioClient = client
	}
	return minioblob.NewStore(s.minioClient, bucket, ""), nil
}

// splitURI splits scheme://bucket/key. ok is false for plain paths.
func splitURI(name string) (scheme, bucket, key string, ok bool) {
	scheme, rest, found := strings.Cut(name, "://")
	if !found || scheme == "" {
		return "", "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return scheme, bucket, key, true
}
