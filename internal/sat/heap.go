package sat

import "github.com/rhartert/yagh"

// vsidsHeap is the binary max-heap variable-activity order used in stable
// mode, wrapping a yagh.IntMap min-heap and negating scores to get max-heap
// behavior.
type vsidsHeap struct {
	order *yagh.IntMap[float64]

	scores []float64 // in [0, maxScore)
	inc    float64   // in (0, maxScore)
	growth float64   // > 1
}

const maxVSIDSScore = 1e100

func newVSIDSHeap(growth float64) *vsidsHeap {
	return &vsidsHeap{
		order:  yagh.New[float64](0),
		inc:    1,
		growth: growth,
	}
}

// grow registers one more variable with a zero initial score.
func (h *vsidsHeap) grow() {
	v := len(h.scores)
	h.scores = append(h.scores, 0)
	h.order.GrowBy(1)
	h.order.Put(v, 0)
}

// reinsert puts variable v back among the candidates to be selected. Called
// when v becomes unassigned (backtracking, §4.6).
func (h *vsidsHeap) reinsert(v int) {
	h.order.Put(v, -h.scores[v])
}

// contains reports whether v is currently present in the heap.
func (h *vsidsHeap) contains(v int) bool {
	return h.order.Contains(v)
}

// bump increases v's activity, rescaling everything if the max-score
// threshold is crossed.
func (h *vsidsHeap) bump(v int) {
	newScore := h.scores[v] + h.inc
	h.scores[v] = newScore
	if h.order.Contains(v) {
		h.order.Put(v, -newScore)
	}
	if newScore > maxVSIDSScore {
		h.rescale()
	}
}

// decay grows the global increment (equivalent to decaying every score).
func (h *vsidsHeap) decay() {
	h.inc *= h.growth
	if h.inc > maxVSIDSScore {
		h.rescale()
	}
}

func (h *vsidsHeap) rescale() {
	h.inc *= 1e-100
	for v, sc := range h.scores {
		ns := sc * 1e-100
		h.scores[v] = ns
		if h.order.Contains(v) {
			h.order.Put(v, -ns)
		}
	}
}

// popUnassigned pops and returns the variable with the maximum score among
// those still unassigned, discarding stale already-assigned heap entries
// lazily along the way.
func (h *vsidsHeap) popUnassigned(s *Solver) int {
	for {
		item, ok := h.order.Pop()
		if !ok {
			panic("sat: VSIDS heap exhausted with unassigned variables remaining")
		}
		if s.VarValue(item.Elem) == Unknown {
			return item.Elem
		}
	}
}
