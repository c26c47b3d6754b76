// Package priofile is an optional, memory-mapped loader for a large
// file-resident priority array. It is not part of the bucketing core —
// the core only ever depends on the Oracle interface — but a consumer
// operating at graph scale needs some way to get a priority array off
// disk without paying to read the whole thing into the heap up front,
// the same role mmap-go plays in the teacher's own read-only Index.
package priofile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	julerrors "github.com/graphworks/julienne/errors"
)

// PriorityArray is a read-only, memory-mapped array of uint32 bucket
// numbers, one per identifier. It satisfies julienne.Oracle directly.
type PriorityArray struct {
	mm    mmap.MMap
	data  []byte
	count uint64
}

// Open memory-maps path and validates its header. The returned
// PriorityArray must be closed with Close when no longer needed.
func Open(path string) (*PriorityArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("priofile: open: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("priofile: stat: %w", err)
	}
	if stat.Size() < headerSize {
		return nil, julerrors.ErrTruncatedFile
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("priofile: mmap: %w", err)
	}

	h, err := decodeHeader(mm)
	if err != nil {
		_ = mm.Unmap()
		return nil, err
	}
	if stat.Size() < int64(headerSize+h.Count*4) {
		_ = mm.Unmap()
		return nil, julerrors.ErrTruncatedFile
	}

	return &PriorityArray{mm: mm, data: []byte(mm), count: h.Count}, nil
}

// Count returns the number of identifiers the array covers.
func (p *PriorityArray) Count() uint64 { return p.count }

// Bucket implements julienne.Oracle by reading the little-endian uint32 at
// the identifier's offset directly out of the mapped page cache.
func (p *PriorityArray) Bucket(id uint32) uint32 {
	off := headerSize + uint64(id)*4
	return binary.LittleEndian.Uint32(p.data[off : off+4])
}

// Close unmaps the file. Safe to call once; a second call is a no-op.
func (p *PriorityArray) Close() error {
	if p.mm == nil {
		return nil
	}
	err := p.mm.Unmap()
	p.mm = nil
	p.data = nil
	return err
}

// Write serializes priorities to path in the format Open expects. This is
// a plain buffered write, not memory-mapped: building the file is a
// one-shot bulk operation with no benefit from page-cache-backed random
// access, unlike the read path Open optimizes for.
func Write(path string, priorities []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("priofile: create: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var hdr [headerSize]byte
	(&header{Count: uint64(len(priorities))}).encodeTo(hdr[:])
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("priofile: write header: %w", err)
	}

	var buf [4]byte
	for _, v := range priorities {
		binary.LittleEndian.PutUint32(buf[:], v)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("priofile: write priority: %w", err)
		}
	}
	return w.Flush()
}
