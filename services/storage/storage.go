// Package storage persists the single volume byte on a flash block device.
//
// The byte lives at a fixed offset in the device. Saving erases the
// containing block and programs one write page padded with 0xFF, so a
// never-written device reads back 0xFF.
package storage

import (
	"log/slog"
	"sync"

	"audiomenu-go/errcode"
	"audiomenu-go/hal"
	"audiomenu-go/x/logx"
)

// ByteStore is a single-byte persistence slot.
type ByteStore struct {
	mu  sync.Mutex
	dev hal.BlockDevice
	off int64
	log *slog.Logger
}

// NewByteStore keeps its byte at offset off of dev. A nil dev yields a
// store whose operations fail with errcode.StorageUnavailable.
func NewByteStore(dev hal.BlockDevice, off int64, log *slog.Logger) *ByteStore {
	return &ByteStore{dev: dev, off: off, log: logx.Component(log, "storage")}
}

// Load returns the stored byte.
func (s *ByteStore) Load() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ByteStore) load() (byte, error) {
	if s.dev == nil {
		return 0xFF, &errcode.E{C: errcode.StorageUnavailable, Op: "storage.load"}
	}
	var b [1]byte
	if _, err := s.dev.ReadAt(b[:], s.off); err != nil {
		return 0xFF, errcode.Wrap(errcode.StorageUnavailable, "storage.load", err)
	}
	return b[0], nil
}

// Save writes v, skipping the erase when the stored byte already matches.
func (s *ByteStore) Save(v byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return &errcode.E{C: errcode.StorageUnavailable, Op: "storage.save"}
	}
	if cur, err := s.load(); err == nil && cur == v {
		return nil
	}

	eb := s.dev.EraseBlockSize()
	wb := s.dev.WriteBlockSize()
	if eb <= 0 || wb <= 0 {
		return &errcode.E{C: errcode.StorageUnavailable, Op: "storage.save", Msg: "bad block geometry"}
	}
	if err := s.dev.EraseBlocks(s.off/eb, 1); err != nil {
		return errcode.Wrap(errcode.StorageUnavailable, "storage.erase", err)
	}

	page := s.off - s.off%wb
	buf := make([]byte, wb)
	for i := range buf {
		buf[i] = 0xFF
	}
	buf[s.off-page] = v
	if _, err := s.dev.WriteAt(buf, page); err != nil {
		return errcode.Wrap(errcode.StorageUnavailable, "storage.write", err)
	}
	s.log.Debug("saved", "offset", s.off, "value", v)
	return nil
}
