package core

import "testing"

func TestOppositeIsInvolutive(t *testing.T) {
	for _, d := range Directions {
		if got := Opposite(Opposite(d)); got != d {
			t.Fatalf("Opposite(Opposite(%v)) = %v", d, got)
		}
		if Opposite(d) == d {
			t.Fatalf("Opposite(%v) must differ from %v", d, d)
		}
	}
}

func TestUnitVectorsCancelWithOpposite(t *testing.T) {
	for _, d := range Directions {
		sum := Unit(d).Add(Unit(Opposite(d)))
		if sum != (Cell{}) {
			t.Fatalf("Unit(%v)+Unit(opposite) = %v, want origin", d, sum)
		}
	}
	if Unit(Up) != (Cell{X: 0, Y: -1}) {
		t.Fatalf("up must decrease y, got %v", Unit(Up))
	}
}
