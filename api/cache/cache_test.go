package cache

import (
	"errors"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache[string] {
	t.Helper()
	c := New[string]("test")
	c.SetDir(t.TempDir())
	return c
}

func TestGetOrSet(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "value", nil
	}

	got, err := c.GetOrSet("key", fetch, false)
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if got != "value" {
		t.Errorf("GetOrSet() = %v, want value", got)
	}

	// Second call served from cache
	got, err = c.GetOrSet("key", fetch, false)
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	if got != "value" {
		t.Errorf("GetOrSet() = %v, want value", got)
	}
	if calls != 1 {
		t.Errorf("calls = %v, want 1", calls)
	}
}

func TestGetOrSetForceUpdate(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrSet("key", fetch, false); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrSet("key", fetch, true); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %v, want 2", calls)
	}
}

func TestGetOrSetExpiredEntryRefreshes(t *testing.T) {
	c := newTestCache(t)
	c.SetTTL(time.Nanosecond)

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrSet("key", fetch, false); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, err := c.GetOrSet("key", fetch, false); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %v, want 2", calls)
	}
}

func TestGetOrSetError(t *testing.T) {
	c := newTestCache(t)

	wantErr := errors.New("upstream down")
	_, err := c.GetOrSet("key", func() (string, error) {
		return "", wantErr
	}, false)
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrSet() error = %v, want %v", err, wantErr)
	}
}

func TestClear(t *testing.T) {
	c := newTestCache(t)

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrSet("key", fetch, false); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := c.GetOrSet("key", fetch, false); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %v, want 2", calls)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"species", "species"},
		{"fields/all", "fields_all"},
		{"a b:c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := normalizeKey(tt.key); got != tt.want {
			t.Errorf("normalizeKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
