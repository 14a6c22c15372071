// Package blobstore provides read-only access to clustering inputs.
//
// A BlobStore resolves names to immutable blobs. Implementations must be safe
// for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with ranged reads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Reading
//
// Blobs support random access through ReadAt and streaming through
// ReadRange. NewReader streams a whole blob, avoiding copies for
// memory-mapped blobs:
//
//	blob, err := store.Open(ctx, "points.csv")
//	if err != nil { ... }
//	defer blob.Close()
//
//	r, err := blobstore.NewReader(ctx, blob)
package blobstore
