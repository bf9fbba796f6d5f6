package bplus

import (
	"sync"
	"testing"
)

// TestConcurrentInsertFind tests that many goroutines inserting disjoint key
// ranges into the same tree all observe their own writes afterward, with no
// lost updates from racing splits.
func TestConcurrentInsertFind(t *testing.T) {
	tr, _ := New[int32](4)

	const goroutines = 10
	const perGoroutine = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(base int32) {
			defer wg.Done()
			for i := int32(0); i < perGoroutine; i++ {
				k := base*perGoroutine + i
				tr.Insert(k, uint64(k))
			}
		}(int32(g))
	}
	wg.Wait()

	for g := 0; g < goroutines; g++ {
		for i := int32(0); i < perGoroutine; i++ {
			k := int32(g)*perGoroutine + i
			if got := tr.Find(k); got != uint64(k) {
				t.Errorf("Find(%d) = %d, want %d", k, got, k)
			}
		}
	}
}

// TestConcurrentInsertRemove tests removes of every even key in a populated
// tree running concurrently with readers, checking only that nothing panics
// or deadlocks and that the surviving keys are exactly the ones never
// removed.
func TestConcurrentInsertRemove(t *testing.T) {
	tr, _ := New[int32](3)

	const n = 2000
	for i := int32(0); i < n; i++ {
		tr.Insert(i, uint64(i))
	}

	var wg sync.WaitGroup

	// Half the keys get removed concurrently with readers scanning ranges.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int32(0); i < n; i += 2 {
			tr.Remove(i)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := int32(0); i < n; i += 50 {
				tr.RangeFind(i, i+49)
				tr.Find(i)
			}
		}()
	}

	wg.Wait()

	for i := int32(1); i < n; i += 2 {
		if got := tr.Find(i); got != uint64(i) {
			t.Errorf("Find(%d) = %d, want %d (odd keys must survive)", i, got, i)
		}
	}
	for i := int32(0); i < n; i += 2 {
		if got := tr.Find(i); got != 0 {
			t.Errorf("Find(%d) = %d, want 0 (even keys were removed)", i, got)
		}
	}
}

// TestConcurrentFindWithCache tests that a value cache stays consistent
// under concurrent inserts and finds: a cached value must never be stale.
func TestConcurrentFindWithCache(t *testing.T) {
	tr, _ := New[int32](4, WithValueCache[int32](1024))

	const n = 500
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; round < 5; round++ {
			for i := int32(0); i < n; i++ {
				tr.Insert(i, uint64(round*1000+int(i)))
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			tr.Find(int32(i % n))
		}
	}()

	wg.Wait()

	for i := int32(0); i < n; i++ {
		if got := tr.Find(i); got != uint64(4000+int(i)) {
			t.Errorf("Find(%d) after final round = %d, want %d", i, got, 4000+int(i))
		}
	}
}
