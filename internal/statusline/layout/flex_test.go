package layout

import (
	"testing"

	"github.com/young1lin/claude-statusline/internal/statusline/config"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  []int
	}{
		{"even split", 20, 2, []int{10, 10}},
		{"remainder to earliest", 11, 3, []int{4, 4, 3}},
		{"remainder two", 8, 3, []int{3, 3, 2}},
		{"less than gaps", 2, 4, []int{1, 1, 0, 0}},
		{"zero", 0, 2, []int{0, 0}},
		{"negative clamps", -5, 2, []int{0, 0}},
		{"no gaps", 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.total, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Distribute(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Distribute(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
					break
				}
			}
		})
	}
}

func TestDistributeConservation(t *testing.T) {
	for total := 0; total < 200; total += 7 {
		for n := 1; n < 9; n++ {
			gaps := Distribute(total, n)
			sum, min, max := 0, gaps[0], gaps[0]
			for _, g := range gaps {
				sum += g
				if g < min {
					min = g
				}
				if g > max {
					max = g
				}
			}
			if sum != total {
				t.Fatalf("Distribute(%d, %d) sums to %d", total, n, sum)
			}
			if max-min > 1 {
				t.Fatalf("Distribute(%d, %d) = %v, gaps differ by more than 1", total, n, gaps)
			}
		}
	}
}

func TestFlexBudget(t *testing.T) {
	tests := []struct {
		name      string
		mode      config.FlexMode
		width     int
		pct       float64
		threshold int
		preview   bool
		want      int
	}{
		{"full", config.FlexFull, 120, 0, 60, false, 116},
		{"full minus 40", config.FlexFullMinus40, 120, 0, 60, false, 79},
		{"until compact below threshold", config.FlexFullUntilCompact, 120, 59.9, 60, false, 116},
		{"until compact at threshold", config.FlexFullUntilCompact, 120, 60, 60, false, 79},
		{"preview full", config.FlexFull, 120, 0, 60, true, 114},
		{"preview minus 40", config.FlexFullMinus40, 120, 0, 60, true, 77},
		{"preview until compact", config.FlexFullUntilCompact, 120, 10, 60, true, 114},
		{"preview until compact over", config.FlexFullUntilCompact, 120, 80, 60, true, 77},
		{"narrow clamps to zero", config.FlexFullMinus40, 30, 0, 60, false, 0},
		{"zero width", config.FlexFull, 0, 0, 60, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlexBudget(tt.mode, tt.width, tt.pct, tt.threshold, tt.preview); got != tt.want {
				t.Errorf("FlexBudget() = %d, want %d", got, tt.want)
			}
		})
	}
}
