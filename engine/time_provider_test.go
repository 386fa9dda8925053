package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider_Advances(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	if d := p.Now().Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms, got %v", d)
	}
}

func TestMockTimeProvider_SetAndAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)

	if !m.Now().Equal(start) {
		t.Fatalf("Expected %v, got %v", start, m.Now())
	}

	m.Advance(999 * time.Millisecond)
	m.Advance(time.Millisecond)
	if want := start.Add(time.Second); !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}

	reset := start.Add(time.Hour)
	m.SetTime(reset)
	if !m.Now().Equal(reset) {
		t.Errorf("Expected %v after SetTime, got %v", reset, m.Now())
	}
}

func TestMockTimeProvider_ConcurrentAdvance(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(400 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}
}
