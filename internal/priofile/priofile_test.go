package priofile

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	julerrors "github.com/graphworks/julienne/errors"
)

func TestWriteOpenRoundTrip(t *testing.T) {
	priorities := []uint32{3, 1, 4, 1, 5, 9, 2, 6}
	path := filepath.Join(t.TempDir(), "priorities.jpr")

	if err := Write(path, priorities); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pa, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pa.Close()

	if got := pa.Count(); got != uint64(len(priorities)) {
		t.Fatalf("Count() = %d, want %d", got, len(priorities))
	}
	for id, want := range priorities {
		if got := pa.Bucket(uint32(id)); got != want {
			t.Fatalf("Bucket(%d) = %d, want %d", id, got, want)
		}
	}
}

func TestOpenEmptyPriorities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpr")
	if err := Write(path, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pa, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pa.Close()

	if got := pa.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-magic.jpr")
	if err := Write(path, []uint32{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[0] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Open(path)
	if !errors.Is(err, julerrors.ErrInvalidMagic) {
		t.Fatalf("Open() error = %v, want ErrInvalidMagic", err)
	}
}

func TestOpenRejectsBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-version.jpr")
	if err := Write(path, []uint32{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	binary.LittleEndian.PutUint16(data[4:6], 0xFFFF)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Open(path)
	if !errors.Is(err, julerrors.ErrInvalidVersion) {
		t.Fatalf("Open() error = %v, want ErrInvalidVersion", err)
	}
}

func TestOpenRejectsTruncatedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated-header.jpr")
	if err := os.WriteFile(path, []byte{0x50, 0x52, 0x4a}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, julerrors.ErrTruncatedFile) {
		t.Fatalf("Open() error = %v, want ErrTruncatedFile", err)
	}
}

func TestOpenRejectsTruncatedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated-payload.jpr")
	if err := Write(path, []uint32{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Claim a larger count than the file actually carries.
	binary.LittleEndian.PutUint64(data[8:16], 5000)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Open(path)
	if !errors.Is(err, julerrors.ErrTruncatedFile) {
		t.Fatalf("Open() error = %v, want ErrTruncatedFile", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "close.jpr")
	if err := Write(path, []uint32{7}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pa, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := pa.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := pa.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
