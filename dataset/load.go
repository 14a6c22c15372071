package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/resource"
	"golang.org/x/sync/errgroup"
)

type options struct {
	resources   *resource.Controller
	compression Compression
}

// Option configures Open and Load.
type Option func(*options)

// WithResourceController throttles reads to the controller's IO limit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithCompression forces a codec instead of detecting it from the name.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Open opens the named blob and returns a reader over its decoded contents.
// Closing the reader releases the blob.
func Open(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (io.ReadCloser, error) {
	o := applyOptions(opts)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		_ = blob.Close()
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var src io.Reader = raw
	if o.resources != nil {
		src = resource.NewRateLimitedReader(ctx, raw, o.resources)
	}

	c := o.compression
	if c == CompressionAuto {
		c = DetectCompression(name)
	}

	dec, err := decompress(src, c)
	if err != nil {
		_ = raw.Close()
		_ = blob.Close()
		return nil, fmt.Errorf("decode %s (%s): %w", name, c, err)
	}

	return &stream{Reader: dec, closers: []io.Closer{dec, raw, blob}}, nil
}

type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Read parses a single named input.
func Read(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*Table, error) {
	rc, err := Open(ctx, store, name, opts...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := ReadCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Load reads all named inputs concurrently and joins them left to right.
// A single input is returned sorted by key.
func Load(ctx context.Context, store blobstore.BlobStore, names []string, opts ...Option) (*Table, error) {
	if len(names) == 0 {
		return nil, errors.New("dataset: no inputs")
	}

	tables := make([]*Table, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			t, err := Read(gctx, store, name, opts...)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := tables[0]
	for _, t := range tables[1:] {
		out = Join(out, t)
	}
	if len(tables) == 1 {
		out.SortByKey()
	}
	return out, nil
}
