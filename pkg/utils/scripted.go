package utils

// Scripted is a deterministic Source that replays fixed values. Intn answers
// come from Ints and Float64 answers from Floats, each consumed in order.
// When a queue runs dry Intn falls back to 0 and Float64 to 0.999 (no
// probabilistic event fires), so tests only list the rolls that matter.
type Scripted struct {
	Ints   []int
	Floats []float64
}

func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if n <= 0 {
		return 0
	}
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.999
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
