//go:build !rp2040 && !rp2350

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostFlashDefaultSize = 64 * 1024
	hostFlashEraseBlock  = 4096
	hostFlashWriteBlock  = 256
)

// FileFlash emulates NOR flash in a host file: erase sets 0xFF, writes may
// only clear bits.
type FileFlash struct {
	mu    sync.Mutex
	f     *os.File
	size  int64
	blank [hostFlashEraseBlock]byte
}

// OpenFileFlash opens (or creates) path and sizes it to size bytes when new.
func OpenFileFlash(path string, size int64) (*FileFlash, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	ff := &FileFlash{f: f, size: st.Size()}
	for i := range ff.blank {
		ff.blank[i] = 0xFF
	}
	if ff.size == 0 {
		ff.size = size
		for off := int64(0); off < size; off += hostFlashEraseBlock {
			if _, err := f.WriteAt(ff.blank[:], off); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}
	return ff, nil
}

func (f *FileFlash) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.Close()
}

func (f *FileFlash) Size() int64           { return f.size }
func (f *FileFlash) WriteBlockSize() int64 { return hostFlashWriteBlock }
func (f *FileFlash) EraseBlockSize() int64 { return hostFlashEraseBlock }

func (f *FileFlash) ReadAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	if n := f.size - off; int64(len(p)) > n {
		p = p[:n]
	}
	return f.f.ReadAt(p, off)
}

func (f *FileFlash) WriteAt(p []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	if n := f.size - off; int64(len(p)) > n {
		p = p[:n]
	}
	cur := make([]byte, len(p))
	if _, err := f.f.ReadAt(cur, off); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if cur[i]&p[i] != p[i] {
			return 0, ErrWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, off)
}

// EraseBlocks erases length blocks starting at block index start.
func (f *FileFlash) EraseBlocks(start, length int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	off := start * hostFlashEraseBlock
	end := off + length*hostFlashEraseBlock
	if start < 0 || length < 0 || end > f.size {
		return fmt.Errorf("flash erase start=%d len=%d: %w", start, length, os.ErrInvalid)
	}
	for ; off < end; off += hostFlashEraseBlock {
		if _, err := f.f.WriteAt(f.blank[:], off); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
	}
	return nil
}
