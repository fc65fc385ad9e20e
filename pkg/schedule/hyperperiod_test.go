package schedule

import "testing"

func TestHyperperiod_ReferenceSet(t *testing.T) {
	periods := []int{10, 10, 20, 20, 40, 40, 80}

	hyper, err := Hyperperiod(periods)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hyper != 80 {
		t.Errorf("expected hyperperiod 80, got %d", hyper)
	}
	for _, p := range periods {
		if hyper%p != 0 {
			t.Errorf("hyperperiod %d not divisible by period %d", hyper, p)
		}
	}
}

func TestHyperperiod_SinglePeriod(t *testing.T) {
	hyper, err := Hyperperiod([]int{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hyper != 7 {
		t.Errorf("expected hyperperiod 7, got %d", hyper)
	}
}

func TestHyperperiod_Coprime(t *testing.T) {
	hyper, err := Hyperperiod([]int{4, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hyper != 12 {
		t.Errorf("expected hyperperiod 12, got %d", hyper)
	}
}

func TestHyperperiod_Empty(t *testing.T) {
	if _, err := Hyperperiod(nil); err == nil {
		t.Error("expected error for empty period set")
	}
}

func TestHyperperiod_NonPositive(t *testing.T) {
	if _, err := Hyperperiod([]int{10, 0}); err == nil {
		t.Error("expected error for zero period")
	}
	if _, err := Hyperperiod([]int{10, -5}); err == nil {
		t.Error("expected error for negative period")
	}
}
