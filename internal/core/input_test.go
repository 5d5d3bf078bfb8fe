package core

import "testing"

func TestReadAction(t *testing.T) {
	tests := []struct {
		name      string
		codes     []KeyCode
		expected  Action
		remaining int
	}{
		{"empty queue", nil, ActionNone, 0},
		{"a moves left", []KeyCode{'a'}, ActionLeft, 0},
		{"A moves left", []KeyCode{'A'}, ActionLeft, 0},
		{"d moves right", []KeyCode{'d'}, ActionRight, 0},
		{"D moves right", []KeyCode{'D'}, ActionRight, 0},
		{"space fires", []KeyCode{' '}, ActionFire, 0},
		{"q quits", []KeyCode{'q'}, ActionQuit, 0},
		{"Q quits", []KeyCode{'Q'}, ActionQuit, 0},
		{"unknown ignored", []KeyCode{'x'}, ActionNone, 0},
		{"left arrow", []KeyCode{KeyExtended, KeyArrowLeft}, ActionLeft, 0},
		{"right arrow", []KeyCode{KeyExtended, KeyArrowRight}, ActionRight, 0},
		{"numpad prefix", []KeyCode{KeyExtendedNU, KeyArrowRight}, ActionRight, 0},
		{"other extended ignored", []KeyCode{KeyExtended, 72}, ActionNone, 0},
		{"dangling prefix", []KeyCode{KeyExtended}, ActionNone, 0},
		{"one code per call", []KeyCode{'a', 'd', ' '}, ActionLeft, 2},
		{"arrow then key", []KeyCode{KeyExtended, KeyArrowLeft, 'q'}, ActionLeft, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewKeyQueue(8)
			q.Push(tc.codes...)

			got := ReadAction(q)
			if got != tc.expected {
				t.Errorf("ReadAction() = %v, expected %v", got, tc.expected)
			}
			if q.Len() != tc.remaining {
				t.Errorf("Len() after read = %d, expected %d", q.Len(), tc.remaining)
			}
		})
	}
}

func TestKeyQueueFIFO(t *testing.T) {
	q := NewKeyQueue(3)

	if !q.Push('a', 'b') {
		t.Fatal("Push should succeed with room available")
	}
	if c, ok := q.Poll(); !ok || c != 'a' {
		t.Errorf("Poll() = %q, %v; expected 'a', true", c, ok)
	}

	// Wrap around the ring
	q.Push('c', 'd')
	want := []KeyCode{'b', 'c', 'd'}
	for _, w := range want {
		c, ok := q.Poll()
		if !ok || c != w {
			t.Errorf("Poll() = %q, %v; expected %q, true", c, ok, w)
		}
	}

	if _, ok := q.Poll(); ok {
		t.Error("Poll on empty queue should return false")
	}
}

func TestKeyQueueOverflow(t *testing.T) {
	q := NewKeyQueue(2)
	q.Push('a')

	// Sequence does not fit: dropped whole
	if q.Push(KeyExtended, KeyArrowLeft) {
		t.Error("Push should fail when the sequence does not fit")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 after rejected push", q.Len())
	}

	q.Push('d')
	if q.Push('x') {
		t.Error("Push on a full queue should fail")
	}

	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", q.Len())
	}
}

func TestNewKeyQueueDefaultSize(t *testing.T) {
	q := NewKeyQueue(0)
	for i := 0; i < DefaultKeyQueueSize; i++ {
		if !q.Push('a') {
			t.Fatalf("Push %d should fit in a default-sized queue", i)
		}
	}
	if q.Push('a') {
		t.Error("Queue should be full at DefaultKeyQueueSize")
	}
}
