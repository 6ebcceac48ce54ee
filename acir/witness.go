// Package acir holds the arithmetic-circuit intermediate representation: an
// ordered opcode list over field-valued witnesses, plus the partial witness
// assignment the solver grows.
package acir

import (
	"sort"

	"github.com/consensys/gnark/constraint"
)

// Witness identifies an unknown quantity in a circuit. Ids are allocated
// densely by the circuit producer.
type Witness uint32

type witnessEntry struct {
	w Witness
	v constraint.Element
}

// WitnessMap is a partial assignment from Witness to field element, kept
// sorted by witness id so that iteration order is deterministic across
// platforms.
type WitnessMap struct {
	entries []witnessEntry
}

func NewWitnessMap() *WitnessMap {
	return &WitnessMap{}
}

func (m *WitnessMap) Len() int {
	return len(m.entries)
}

func (m *WitnessMap) search(w Witness) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].w >= w
	})
}

func (m *WitnessMap) Get(w Witness) (constraint.Element, bool) {
	i := m.search(w)
	if i < len(m.entries) && m.entries[i].w == w {
		return m.entries[i].v, true
	}
	return constraint.Element{}, false
}

func (m *WitnessMap) Contains(w Witness) bool {
	_, ok := m.Get(w)
	return ok
}

// Set stores v for w, replacing any previous value. The solver never replaces
// an assignment with a different value; it checks before writing.
func (m *WitnessMap) Set(w Witness, v constraint.Element) {
	i := m.search(w)
	if i < len(m.entries) && m.entries[i].w == w {
		m.entries[i].v = v
		return
	}
	m.entries = append(m.entries, witnessEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = witnessEntry{w: w, v: v}
}

// ForEach visits assignments in ascending witness order.
func (m *WitnessMap) ForEach(f func(Witness, constraint.Element)) {
	for _, e := range m.entries {
		f(e.w, e.v)
	}
}

func (m *WitnessMap) Clone() *WitnessMap {
	res := &WitnessMap{entries: make([]witnessEntry, len(m.entries))}
	copy(res.entries, m.entries)
	return res
}
