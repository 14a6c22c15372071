// Package resource implements the Controller used to govern the memory, worker
// and IO usage of clustering runs.
//
// The Controller provides centralized management of three resource types:
//
//   - Memory: Reserve working-state bytes against a hard budget
//   - Concurrency: Limit the number of runs executing at once
//   - IO: Rate-limit dataset reads from local or remote blob stores
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. A request larger than the whole budget can never be
// satisfied and fails immediately with ErrMemoryLimitExceeded; smaller requests
// wait until enough memory has been released or ctx is done:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(ctx, 1024*1024); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	reader := resource.NewRateLimitedReader(ctx, file, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
