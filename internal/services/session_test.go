package services

import (
	"testing"
	"time"
)

func TestSessionManagerCreateAndGet(t *testing.T) {
	m := NewSessionManager(time.Minute)

	id, store := m.Create()
	if id == "" {
		t.Fatal("empty session id")
	}
	if got := m.Get(id); got != store {
		t.Error("Get did not return the created store")
	}
	if got := m.Get("unknown"); got != nil {
		t.Error("Get(unknown) returned a store")
	}
	if got := m.Count(); got != 1 {
		t.Errorf("Count() = %d; want 1", got)
	}
}

func TestSessionManagerExpiry(t *testing.T) {
	m := NewSessionManager(time.Millisecond)

	id, _ := m.Create()
	time.Sleep(5 * time.Millisecond)

	if got := m.Get(id); got != nil {
		t.Error("expired session still resolvable")
	}
	if got := m.Count(); got != 0 {
		t.Errorf("Count() = %d after sweep; want 0", got)
	}
}
