// Package arena provides a fixed-capacity slab allocator for the working
// buffers of a single clustering run.
//
// Reserve acquires the bytes of a whole run from a MemoryAcquirer in one
// call, so concurrent runs never hold part of a budget while waiting for the
// rest. Slabs then hand out zeroed, non-overlapping views with Alloc; views
// share one backing array and are dropped together by Free.
//
// # Concurrency
//
// A Slab is owned by one run and is not safe for concurrent use.
package arena
