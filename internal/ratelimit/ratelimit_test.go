package ratelimit

import (
	"testing"
	"time"
)

func TestAIBudget_SpendsSlots(t *testing.T) {
	b := NewAIBudget(3)
	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("request %d should fit the budget", i+1)
		}
	}
	if b.Allow() {
		t.Fatal("budget exhausted, request should be refused")
	}
	if b.Used() != 3 {
		t.Fatalf("Used() = %d, want 3", b.Used())
	}
}

func TestAIBudget_ZeroMeansUnlimited(t *testing.T) {
	b := NewAIBudget(0)
	for i := 0; i < 100; i++ {
		if !b.Allow() {
			t.Fatalf("unlimited budget refused request %d", i+1)
		}
	}
}

func TestAIBudget_ResetsAfterWindow(t *testing.T) {
	b := NewAIBudget(1)
	if !b.Allow() {
		t.Fatal("first request should fit")
	}
	if b.Allow() {
		t.Fatal("second request should be refused")
	}

	b.mu.Lock()
	b.resetTime = time.Now().Add(-time.Second)
	b.mu.Unlock()

	if !b.Allow() {
		t.Fatal("request after window reset should fit")
	}
	if b.Used() != 1 {
		t.Fatalf("Used() = %d after reset, want 1", b.Used())
	}
}
