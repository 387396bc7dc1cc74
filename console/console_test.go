package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteEmitsByte(t *testing.T) {
	var out bytes.Buffer
	d := New(strings.NewReader(""), &out)
	if err := d.Write('A'); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.String() != "A" {
		t.Errorf("out = %q, want %q", out.String(), "A")
	}
}

func TestReadBlockingReturnsFedBytes(t *testing.T) {
	d := New(strings.NewReader("hi"), &bytes.Buffer{})
	for _, want := range []byte("hi") {
		got, err := d.ReadBlocking()
		if err != nil {
			t.Fatalf("ReadBlocking: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestReadBlockingReturnsErrorAtEOF(t *testing.T) {
	d := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := d.ReadBlocking(); err == nil {
		t.Fatal("expected an error at EOF")
	}
}

func TestPollReflectsAvailability(t *testing.T) {
	d := New(strings.NewReader("x"), &bytes.Buffer{})
	deadline := time.Now().Add(time.Second)
	for !d.Poll() {
		if time.Now().After(deadline) {
			t.Fatal("Poll never became true")
		}
		time.Sleep(time.Millisecond)
	}
	b, err := d.ReadBlocking()
	if err != nil {
		t.Fatalf("ReadBlocking: %v", err)
	}
	if b != 'x' {
		t.Errorf("got %q, want %q", b, 'x')
	}
}
