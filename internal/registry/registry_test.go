package registry

import (
	"context"
	"testing"
)

type fakeVoice struct{ title string }

func (f fakeVoice) Title() string   { return f.title }
func (f fakeVoice) Available() bool { return true }
func (f fakeVoice) Pronounce(context.Context, string, bool) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Voice { return fakeVoice{"B"} })
	Register("test-a", func() Voice { return fakeVoice{"A"} })

	if !Exists("test-a") {
		t.Fatal("expected test-a to exist")
	}
	if Exists("test-missing") {
		t.Fatal("unexpected voice")
	}

	v, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.Title() != "B" {
		t.Errorf("title = %q, want B", v.Title())
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("expected error for unknown voice")
	}

	list := List()
	idxA, idxB := -1, -1
	for i, info := range list {
		switch info.ID {
		case "test-a":
			idxA = i
		case "test-b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List not sorted or incomplete: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Voice { return fakeVoice{"D"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Voice { return fakeVoice{"D"} })
}
