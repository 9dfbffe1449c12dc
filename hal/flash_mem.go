package hal

import (
	"errors"
	"sync"
)

var ErrWriteRequiresErase = errors.New("flash write requires erase")

var errOutOfRange = errors.New("flash access out of range")

// MemFlash is a RAM-backed BlockDevice with NOR semantics. It backs the
// simulator when no file is wanted and the storage tests.
type MemFlash struct {
	mu         sync.Mutex
	data       []byte
	writeBlock int64
	eraseBlock int64

	Erases int
	Writes int
}

// NewMemFlash returns an erased device of blocks*eraseBlock bytes.
func NewMemFlash(blocks int, writeBlock, eraseBlock int64) *MemFlash {
	d := make([]byte, int64(blocks)*eraseBlock)
	for i := range d {
		d[i] = 0xFF
	}
	return &MemFlash{data: d, writeBlock: writeBlock, eraseBlock: eraseBlock}
}

func (m *MemFlash) WriteBlockSize() int64 { return m.writeBlock }
func (m *MemFlash) EraseBlockSize() int64 { return m.eraseBlock }

func (m *MemFlash) ReadAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off >= int64(len(m.data)) {
		return 0, errOutOfRange
	}
	return copy(p, m.data[off:]), nil
}

func (m *MemFlash) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(m.data)) {
		return 0, errOutOfRange
	}
	for i, b := range p {
		if m.data[off+int64(i)]&b != b {
			return 0, ErrWriteRequiresErase
		}
	}
	m.Writes++
	return copy(m.data[off:], p), nil
}

func (m *MemFlash) EraseBlocks(start, length int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	off, end := start*m.eraseBlock, (start+length)*m.eraseBlock
	if start < 0 || length < 0 || end > int64(len(m.data)) {
		return errOutOfRange
	}
	for i := off; i < end; i++ {
		m.data[i] = 0xFF
	}
	m.Erases++
	return nil
}
