package disk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/i8080cpm/host"
)

func newTestImage(t *testing.T, sectors int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dsk")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := f.Truncate(int64(sectors * host.SectorSize)); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return path
}

func TestAttachDetach(t *testing.T) {
	path := newTestImage(t, 4)
	d, err := Attach(path)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !d.Attached() {
		t.Fatal("expected Attached() true")
	}
	if d.FileName() != path {
		t.Errorf("FileName() = %q, want %q", d.FileName(), path)
	}
	if err := d.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if d.Attached() {
		t.Fatal("expected Attached() false after Detach")
	}
}

func TestOperationsOnDetachedFile(t *testing.T) {
	d := &File{}
	if err := d.Seek(0); err != ErrNotAttached {
		t.Errorf("Seek on detached = %v, want ErrNotAttached", err)
	}
	buf := make([]byte, host.SectorSize)
	if err := d.ReadSector(buf); err != ErrNotAttached {
		t.Errorf("ReadSector on detached = %v, want ErrNotAttached", err)
	}
	if err := d.WriteSector(buf); err != ErrNotAttached {
		t.Errorf("WriteSector on detached = %v, want ErrNotAttached", err)
	}
}

func TestWriteThenReadSectorRoundTrip(t *testing.T) {
	path := newTestImage(t, 2)
	d, err := Attach(path)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer d.Detach()

	want := make([]byte, host.SectorSize)
	for i := range want {
		want[i] = byte(i)
	}

	if err := d.Seek(int64(host.SectorSize)); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if err := d.WriteSector(want); err != nil {
		t.Fatalf("WriteSector: %v", err)
	}

	got := make([]byte, host.SectorSize)
	if err := d.Seek(int64(host.SectorSize)); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if err := d.ReadSector(got); err != nil {
		t.Fatalf("ReadSector: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestReadSectorWrongBufferSize(t *testing.T) {
	path := newTestImage(t, 1)
	d, err := Attach(path)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer d.Detach()

	if err := d.ReadSector(make([]byte, 64)); err != ErrShortSector {
		t.Errorf("ReadSector with short buffer = %v, want ErrShortSector", err)
	}
}

var _ host.Disk = (*File)(nil)
