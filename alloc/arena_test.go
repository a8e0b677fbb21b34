package alloc_test

import (
	"bytes"
	"testing"

	"github.com/ghettovoice/uribuf/alloc"
)

func TestArena_Alloc(t *testing.T) {
	t.Parallel()

	a := alloc.NewArena(8)

	b1, err := a.Alloc(4)
	if err != nil {
		t.Fatalf("arena.Alloc(4) error = %v, want nil", err)
	}
	copy(b1, "abcd")

	// force the arena to grow past its initial space
	b2, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("arena.Alloc(16) error = %v, want nil", err)
	}
	copy(b2, "0123456789abcdef")

	// earlier blocks stay intact after growth
	if got, want := b1, []byte("abcd"); !bytes.Equal(got, want) {
		t.Errorf("b1 = %q, want %q", got, want)
	}
	if got, want := a.Size(), 20; got != want {
		t.Errorf("arena.Size() = %d, want %d", got, want)
	}
}

func TestArena_Reset(t *testing.T) {
	t.Parallel()

	a := alloc.NewArena(16)

	b, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("arena.Alloc(8) error = %v, want nil", err)
	}
	copy(b, "garbage!")

	a.Reset()
	if got, want := a.Size(), 0; got != want {
		t.Errorf("arena.Size() = %d, want %d", got, want)
	}

	// reused space is handed out zeroed
	b, err = a.Alloc(8)
	if err != nil {
		t.Fatalf("arena.Alloc(8) error = %v, want nil", err)
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("b[%d] = %d, want 0", i, v)
		}
	}
}

func TestArena_Realloc(t *testing.T) {
	t.Parallel()

	a := alloc.NewArena(0)

	b, err := a.Alloc(3)
	if err != nil {
		t.Fatalf("arena.Alloc(3) error = %v, want nil", err)
	}
	copy(b, "abc")

	nb, err := a.Realloc(b, 6)
	if err != nil {
		t.Fatalf("arena.Realloc(b, 6) error = %v, want nil", err)
	}
	if got, want := nb, []byte("abc\x00\x00\x00"); !bytes.Equal(got, want) {
		t.Errorf("nb = %v, want %v", got, want)
	}
}
