// Package optimizers holds the circuit-to-circuit rewrite passes. Every pass
// is a pure function of the input circuit and builds a new circuit value.
package optimizers

import (
	"sort"

	"github.com/zkforge/acvm/acir"
)

// RangeOptimizer removes redundant range constraints. If a witness is
// range-constrained to both 16 and 32 bits, fitting in 16 bits implies
// fitting in 32, so only the 16-bit constraint is kept.
type RangeOptimizer struct {
	// lowest known bit size per witness, ascending witness order
	lists   *widthMap
	circuit acir.Circuit
}

// NewRangeOptimizer collects all known range constraints from the circuit.
func NewRangeOptimizer(circuit acir.Circuit) *RangeOptimizer {
	return &RangeOptimizer{lists: collectRanges(circuit), circuit: circuit}
}

// collectRanges stores, per witness, the lowest bit width it is constrained
// to. An equal width seen later never replaces the stored one.
func collectRanges(circuit acir.Circuit) *widthMap {
	widths := &widthMap{}
	for _, opcode := range circuit.Opcodes {
		witness, numBits, ok := extractRangeOpcode(opcode)
		if !ok {
			continue
		}
		if old, found := widths.get(witness); !found || old > numBits {
			widths.set(witness, numBits)
		}
	}
	return widths
}

// ReplaceRedundantRanges returns a circuit where each witness is range
// constrained at most once, to the lowest bit size seen for it. Non-range
// opcodes pass through unchanged in their original order.
func (r *RangeOptimizer) ReplaceRedundantRanges() acir.Circuit {
	alreadySeen := make(map[acir.Witness]bool)
	optimized := make([]acir.Opcode, 0, len(r.circuit.Opcodes))

	for _, opcode := range r.circuit.Opcodes {
		witness, numBits, ok := extractRangeOpcode(opcode)
		if !ok {
			optimized = append(optimized, opcode)
			continue
		}
		if alreadySeen[witness] {
			continue
		}
		storedNumBits, found := r.lists.get(witness)
		if !found {
			panic("witness missing from range collection; collectRanges must run first")
		}
		if numBits <= storedNumBits {
			alreadySeen[witness] = true
			optimized = append(optimized, opcode)
		}
	}

	return acir.Circuit{
		CurrentWitnessIndex: r.circuit.CurrentWitnessIndex,
		Opcodes:             optimized,
		PublicParameters:    r.circuit.PublicParameters,
		ReturnValues:        r.circuit.ReturnValues,
	}
}

// extractRangeOpcode returns the constrained witness and bit width when the
// opcode is a range constraint.
func extractRangeOpcode(opcode acir.Opcode) (acir.Witness, uint32, bool) {
	if opcode.Type != acir.OpcodeBlackBoxFuncCall || opcode.BlackBox.Name != acir.RANGE {
		return 0, 0, false
	}
	if len(opcode.BlackBox.Inputs) == 0 {
		panic("range constraint must carry one input descriptor")
	}
	input := opcode.BlackBox.Inputs[0]
	return input.Witness, input.NumBits, true
}

type widthEntry struct {
	w    acir.Witness
	bits uint32
}

// widthMap is a sorted associative container from witness to bit width, so
// per-witness bookkeeping stays deterministic.
type widthMap struct {
	entries []widthEntry
}

func (m *widthMap) search(w acir.Witness) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].w >= w
	})
}

func (m *widthMap) get(w acir.Witness) (uint32, bool) {
	i := m.search(w)
	if i < len(m.entries) && m.entries[i].w == w {
		return m.entries[i].bits, true
	}
	return 0, false
}

func (m *widthMap) set(w acir.Witness, bits uint32) {
	i := m.search(w)
	if i < len(m.entries) && m.entries[i].w == w {
		m.entries[i].bits = bits
		return
	}
	m.entries = append(m.entries, widthEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = widthEntry{w: w, bits: bits}
}
