package storage

import (
	"testing"

	"audiomenu-go/errcode"
	"audiomenu-go/hal"
)

func TestFirstBootReadsErased(t *testing.T) {
	s := NewByteStore(hal.NewMemFlash(1, 256, 4096), 0, nil)
	v, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v != 0xFF {
		t.Fatalf("first boot = %d, want 255", v)
	}
}

func TestSaveLoadRoundTripAndRewrite(t *testing.T) {
	dev := hal.NewMemFlash(2, 256, 4096)
	s := NewByteStore(dev, 4096+300, nil)

	for _, v := range []byte{42, 7, 100} {
		if err := s.Save(v); err != nil {
			t.Fatalf("Save(%d): %v", v, err)
		}
		got, err := s.Load()
		if err != nil || got != v {
			t.Fatalf("Load = %d, %v; want %d", got, err, v)
		}
	}
	if dev.Erases != 3 {
		t.Fatalf("erases = %d, want 3", dev.Erases)
	}

	if err := s.Save(100); err != nil {
		t.Fatal(err)
	}
	if dev.Erases != 3 {
		t.Fatal("unchanged value was rewritten")
	}

	// block 0 untouched
	buf := make([]byte, 1)
	_, _ = dev.ReadAt(buf, 300)
	if buf[0] != 0xFF {
		t.Fatalf("neighbouring block modified: %#x", buf[0])
	}
}

func TestNoDevice(t *testing.T) {
	s := NewByteStore(nil, 0, nil)
	if _, err := s.Load(); errcode.Of(err) != errcode.StorageUnavailable {
		t.Fatalf("Load err = %v", err)
	}
	if err := s.Save(1); errcode.Of(err) != errcode.StorageUnavailable {
		t.Fatalf("Save err = %v", err)
	}
}
