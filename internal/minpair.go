package internal

// minPair keeps the two smallest ticks pushed since the last clear.
// It behaves like a max-heap capped at two elements: top is the larger of
// the retained values, and a new value only displaces top when strictly smaller.
type minPair struct {
	low  Tick
	high Tick
	n    uint8
}

func (m *minPair) clear() {
	*m = minPair{}
}

func (m *minPair) len() int {
	return int(m.n)
}

func (m *minPair) push(t Tick) {
	switch m.n {
	case 0:
		m.low = t
		m.n = 1
	case 1:
		if t < m.low {
			m.high, m.low = m.low, t
		} else {
			m.high = t
		}
		m.n = 2
	default:
		if t >= m.high {
			return
		}
		if t < m.low {
			m.high, m.low = m.low, t
		} else {
			m.high = t
		}
	}
}

// top returns the second smallest tick, or the only one held.
// The result is zero on an empty pair.
func (m *minPair) top() Tick {
	if m.n == 2 {
		return m.high
	}
	return m.low
}
