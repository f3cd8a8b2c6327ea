package pool

import (
	"sync"
	"testing"
)

func TestPool_FactoryValue(t *testing.T) {
	pool := NewPool(func() *int {
		x := 42
		return &x
	})

	obj := pool.Get()
	if obj == nil || *obj != 42 {
		t.Fatalf("Expected fresh object with value 42, got %v", obj)
	}
	pool.Put(obj)
	pool.Put(nil) // must be a no-op
}

func TestPool_WithReset(t *testing.T) {
	resets := 0
	pool := NewPoolWithReset(
		func() *map[string]int {
			m := make(map[string]int)
			return &m
		},
		func(m *map[string]int) {
			ClearMap(*m)
			resets++
		},
	)

	m1 := pool.Get()
	(*m1)["a"] = 1
	pool.Put(m1)

	// Whether or not the object is reused, reset runs on every Get
	m2 := pool.Get()
	if resets != 2 {
		t.Errorf("Expected reset on every Get, got %d calls", resets)
	}
	if len(*m2) != 0 {
		t.Errorf("Expected empty map after reset, got %v", *m2)
	}
}

func TestClearMap(t *testing.T) {
	m := map[string]bool{"--a": true, "--b": false}
	ClearMap(m)
	if len(m) != 0 {
		t.Errorf("Expected empty map, got %v", m)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPoolWithReset(
		func() *[]string {
			s := make([]string, 0, 4)
			return &s
		},
		func(s *[]string) { *s = (*s)[:0] },
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := pool.Get()
				if len(*s) != 0 {
					t.Errorf("Expected reset slice, got %v", *s)
				}
				*s = append(*s, "token")
				pool.Put(s)
			}
		}()
	}
	wg.Wait()
}
