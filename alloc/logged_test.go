package alloc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uribuf/alloc"
	"github.com/ghettovoice/uribuf/log"
)

func TestLogged(t *testing.T) {
	t.Parallel()

	a := alloc.NewLogged(alloc.NewLimited(alloc.Heap{}, 4), log.Noop)

	b, err := a.Alloc(4)
	if err != nil {
		t.Fatalf("logged.Alloc(4) error = %v, want nil", err)
	}
	if got, want := len(b), 4; got != want {
		t.Errorf("len(b) = %d, want %d", got, want)
	}

	_, err = a.Alloc(1)
	if diff := cmp.Diff(err, error(alloc.ErrAllocFailed), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("logged.Alloc(1) error = %v, want %v\ndiff (-got +want):\n%v", err, alloc.ErrAllocFailed, diff)
	}

	a.Free(b)
	if _, err := a.Alloc(2); err != nil {
		t.Errorf("logged.Alloc(2) error = %v, want nil", err)
	}
}
