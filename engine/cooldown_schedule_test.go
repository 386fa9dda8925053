package engine

import (
	"testing"
	"time"
)

func TestCooldownSchedule_Due(t *testing.T) {
	base := time.Unix(1000, 0)
	var c CooldownSchedule

	c.Schedule(1, base.Add(1000*time.Millisecond))
	c.Schedule(2, base.Add(500*time.Millisecond))
	c.Schedule(3, base.Add(2000*time.Millisecond))

	if due := c.Due(base.Add(499 * time.Millisecond)); len(due) != 0 {
		t.Errorf("Expected nothing due, got %v", due)
	}

	// Exactly at expiry counts as due
	due := c.Due(base.Add(1000 * time.Millisecond))
	if len(due) != 2 || due[0] != 2 || due[1] != 1 {
		t.Errorf("Expected [2 1] in expiry order, got %v", due)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 pending, got %d", c.Len())
	}

	if _, ok := c.Pending(3); !ok {
		t.Error("Target 3 should still be pending")
	}
	if _, ok := c.Pending(1); ok {
		t.Error("Target 1 should have been drained")
	}
}

func TestCooldownSchedule_Reschedule(t *testing.T) {
	base := time.Unix(1000, 0)
	var c CooldownSchedule

	c.Schedule(1, base.Add(time.Second))
	c.Schedule(1, base.Add(3*time.Second))
	if c.Len() != 1 {
		t.Fatalf("Rescheduling must replace, got %d entries", c.Len())
	}
	if exp, _ := c.Pending(1); !exp.Equal(base.Add(3 * time.Second)) {
		t.Errorf("Expected replaced expiry, got %v", exp)
	}

	c.Clear()
	if c.Len() != 0 || c.Due(base.Add(time.Hour)) != nil {
		t.Error("Clear must drop all entries")
	}
}
