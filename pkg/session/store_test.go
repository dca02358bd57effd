package session

import (
	"sync"
	"testing"
)

func TestStore_GetAbsent(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get("nosuchtoken", "k"); ok {
		t.Error("Get() on empty store reported a value")
	}
}

func TestStore_SetGetUpsert(t *testing.T) {
	store := NewStore()
	token := store.Create()

	if _, ok := store.Get(token, "k"); ok {
		t.Error("Get() on fresh session reported a value")
	}

	store.Set(token, "k", "v")
	if v, ok := store.Get(token, "k"); !ok || v != "v" {
		t.Fatalf("Get() = %v, %v; want v, true", v, ok)
	}

	store.Set(token, "k", "w")
	if v, _ := store.Get(token, "k"); v != "w" {
		t.Errorf("Get() after overwrite = %v, want w", v)
	}
}

func TestStore_CompoundValues(t *testing.T) {
	store := NewStore()
	token := store.Create()

	type creds struct{ User, Pass string }
	store.Set(token, "user", creds{"bob", "1234"})

	v, ok := store.Get(token, "user")
	if !ok {
		t.Fatal("Get() reported absent")
	}
	if got := v.(creds); got.User != "bob" || got.Pass != "1234" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestStore_TokenUniqueness(t *testing.T) {
	store := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := store.Create()
		if seen[token] {
			t.Fatalf("Create() returned duplicate token %q", token)
		}
		if len(token) != 32 {
			t.Fatalf("Create() token %q is not 128 bits of hex", token)
		}
		seen[token] = true
	}
	if store.Count() != 1000 {
		t.Errorf("Count() = %d, want 1000", store.Count())
	}
}

func TestStore_SetUnknownTokenCreatesEntry(t *testing.T) {
	store := NewStore()
	store.Set("adopted", "k", "v")
	if !store.Contains("adopted") {
		t.Fatal("Set() on unknown token did not create an entry")
	}
	if v, _ := store.Get("adopted", "k"); v != "v" {
		t.Errorf("Get() = %v, want v", v)
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	token := store.Create()
	store.Delete(token)
	if store.Contains(token) {
		t.Error("Contains() after Delete()")
	}
	store.Delete("never-existed")
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	token := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set(token, "k", n)
				store.Get(token, "k")
				store.Contains(token)
			}
		}(i)
	}
	wg.Wait()

	if _, ok := store.Get(token, "k"); !ok {
		t.Error("value lost under concurrent access")
	}
}
