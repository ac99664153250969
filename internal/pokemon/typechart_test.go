package pokemon

import "testing"

func TestEffectivenessCanonicalPairs(t *testing.T) {
	tests := []struct {
		move, defender Element
		want           float64
	}{
		{Fire, Grass, 1.5},
		{Fire, Ice, 1.5},
		{Fire, Water, 0.75},
		{Water, Fire, 1.5},
		{Water, Grass, 0.75},
		{Water, Electric, 0.75},
		{Grass, Water, 1.5},
		{Grass, Fire, 0.75},
		{Grass, Ice, 0.75},
		{Electric, Water, 1.5},
		{Ice, Grass, 1.5},
		{Ice, Dragon, 1.5},
		{Ice, Fire, 0.75},
		{Dragon, Ice, 0.75},
	}

	special := map[[2]Element]float64{}
	for _, tc := range tests {
		special[[2]Element{tc.move, tc.defender}] = tc.want
		if got := Effectiveness(tc.move, tc.defender); got != tc.want {
			t.Errorf("Effectiveness(%s, %s) = %v, want %v", tc.move, tc.defender, got, tc.want)
		}
	}

	// Every other pair, Normal defenders and Psychic/Normal moves included,
	// is neutral.
	for _, m := range Elements() {
		for _, d := range Elements() {
			if _, ok := special[[2]Element{m, d}]; ok {
				continue
			}
			if got := Effectiveness(m, d); got != Neutral {
				t.Errorf("Effectiveness(%s, %s) = %v, want neutral", m, d, got)
			}
		}
	}
}

func TestEffectivenessUnknownElement(t *testing.T) {
	if got := Effectiveness(Element(42), Fire); got != Neutral {
		t.Fatalf("expected neutral for unknown move element, got %v", got)
	}
	if got := Effectiveness(Fire, Element(-1)); got != Neutral {
		t.Fatalf("expected neutral for unknown defender element, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	if Classify(Advantage) != SuperEffective {
		t.Error("expected 1.5 to be super effective")
	}
	if Classify(Disadvantage) != NotVeryEffective {
		t.Error("expected 0.75 to be not very effective")
	}
	if Classify(Neutral) != NeutralEffect {
		t.Error("expected 1.0 to be neutral")
	}
}
