package period

import (
	"sync"
	"testing"
	"time"
)

func TestValue(t *testing.T) {
	c := NewPeriodCounter(time.Hour)
	c.Add(3)
	c.Add(4)
	if got := c.Value(); got != 7 {
		t.Fatalf("Value = %d, want 7", got)
	}
}

func TestRate(t *testing.T) {
	c := NewPeriodCounter(time.Millisecond)
	c.Add(1000)
	time.Sleep(20 * time.Millisecond)
	c.Add(1000)
	if got := c.RatePerSec(); got <= 0 {
		t.Fatalf("RatePerSec = %d, want > 0", got)
	}
	t.Log("rate:", c.RatePerSec())
}

func TestConcurrentAdd(t *testing.T) {
	c := NewPeriodCounter(time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := c.Value(); got != 8000 {
		t.Fatalf("Value = %d, want 8000", got)
	}
}
