package utils

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestNewTransactionID_CanonicalForm(t *testing.T) {
	id := NewTransactionID()
	if len(id) != 36 {
		t.Fatalf("len(%q) = %d; want 36", id, len(id))
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewTransactionID() = %q; not a valid UUID: %v", id, err)
	}
}

func TestNewTransactionID_Distinct(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewTransactionID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate transaction id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewTransactionID_Concurrent(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := NewTransactionID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("got %d unique ids; want %d", len(seen), workers*perWorker)
	}
}
