// Package mmap maps local input files read-only into memory.
//
//	m, err := mmap.Open("points.csv")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AdviceSequential)
//	data := m.Bytes()
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile; Advise is a no-op there.
//
// A Mapping may be read concurrently. Close is idempotent, but the slice
// returned by Bytes must not be used after Close.
package mmap
