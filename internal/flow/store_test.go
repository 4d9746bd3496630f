package flow

import (
	"errors"
	"testing"
)

type record struct {
	ID    string
	Value int
}

func recordKey(r record) string { return r.ID }

func TestStoreGetPut(t *testing.T) {
	s := NewStore(recordKey)

	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing key should be ErrNotFound, got %+v", err)
	}

	s.Put(record{ID: "a", Value: 1})
	s.Put(record{ID: "a", Value: 2})

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("get failed: %+v", err)
	}
	if got.Value != 2 {
		t.Fatalf("replace-on-update mismatch! should be 2 but got %d", got.Value)
	}
	if s.Len() != 1 {
		t.Fatalf("len mismatch! should be 1 but got %d", s.Len())
	}

	s.Remove("a")
	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("removed key should be ErrNotFound, got %+v", err)
	}
}

func TestStoreDepthFirstDispatch(t *testing.T) {
	upstream := NewStore(recordKey)
	downstream := NewStore(recordKey)

	var order []string
	upstream.AddListener(ListenerFuncs[record]{OnAdd: func(r record) error {
		order = append(order, "A")
		return downstream.Ingest(r)
	}})
	downstream.AddListener(ListenerFuncs[record]{OnAdd: func(record) error {
		order = append(order, "B")
		return nil
	}})
	upstream.AddListener(ListenerFuncs[record]{OnAdd: func(record) error {
		order = append(order, "C")
		return nil
	}})

	if err := upstream.Ingest(record{ID: "x"}); err != nil {
		t.Fatalf("ingest failed: %+v", err)
	}

	// A's whole transitive chain runs before C, the next listener on the
	// same store.
	expected := []string{"A", "B", "C"}
	if len(order) != len(expected) {
		t.Fatalf("dispatch count mismatch! should be %d but got %d", len(expected), len(order))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("dispatch order mismatch at %d! should be %s but got %s", i, expected[i], order[i])
		}
	}
}

func TestStoreNotifyAbortsOnError(t *testing.T) {
	s := NewStore(recordKey)
	boom := errors.New("boom")

	var after int
	s.AddListener(ListenerFuncs[record]{OnAdd: func(record) error { return boom }})
	s.AddListener(ListenerFuncs[record]{OnAdd: func(record) error {
		after++
		return nil
	}})

	if err := s.Ingest(record{ID: "x"}); !errors.Is(err, boom) {
		t.Fatalf("should surface listener error, got %+v", err)
	}
	if after != 0 {
		t.Fatalf("later listener should not run after an error, ran %d times", after)
	}

	// The value itself still landed before notification.
	if _, err := s.Get("x"); err != nil {
		t.Fatalf("value should be stored despite listener error: %+v", err)
	}
}

func TestListenerFuncsNilCallbacks(t *testing.T) {
	var l ListenerFuncs[record]
	if err := l.ProcessAdd(record{}); err != nil {
		t.Fatalf("nil OnAdd should be a no-op: %+v", err)
	}
	if err := l.ProcessRemove(record{}); err != nil {
		t.Fatalf("nil OnRemove should be a no-op: %+v", err)
	}
	if err := l.ProcessUpdate(record{}); err != nil {
		t.Fatalf("nil OnUpdate should be a no-op: %+v", err)
	}
}
