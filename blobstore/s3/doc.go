// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	tables, err := dataset.Load(ctx, store, "input_1.csv", "input_2.csv.zst")
//
// Credentials come from the AWS default chain (environment, shared config,
// instance roles).
//
// # Features
//
//   - HeadObject on open for existence and size
//   - Ranged ReadAt through the transfer manager's downloader
//   - Streaming ReadRange for sequential parsing
//   - Custom endpoints with path-style addressing for S3-compatible services
package s3
