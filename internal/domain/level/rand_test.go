package level

import "fmt"

// scriptedRand replays fixed draws. Exhausted queues return 0 for Intn
// and 0.99 for Float64 (never below any placement chance).
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted Intn(%d) got out of range value %d", n, v))
	}
	return v
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) drained() bool {
	return len(s.ints) == 0 && len(s.floats) == 0
}
