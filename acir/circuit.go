package acir

import "fmt"

// PublicInputs is an ascending-ordered set of witness ids visible outside the
// circuit.
type PublicInputs []Witness

func (p PublicInputs) Contains(w Witness) bool {
	for _, x := range p {
		if x == w {
			return true
		}
	}
	return false
}

// Circuit is an ordered opcode sequence over densely allocated witnesses.
// Once constructed it is immutable: optimization passes build a new Circuit
// value rather than rewriting in place.
type Circuit struct {
	// CurrentWitnessIndex is the highest allocated witness id; every witness
	// referenced by an opcode must not exceed it.
	CurrentWitnessIndex uint32
	Opcodes             []Opcode
	PublicParameters    PublicInputs
	ReturnValues        PublicInputs
}

// Validate checks the witness-id invariant over every opcode.
func (c Circuit) Validate() error {
	var err error
	for i, op := range c.Opcodes {
		op.forEachWitness(func(w Witness) {
			if err == nil && uint32(w) > c.CurrentWitnessIndex {
				err = fmt.Errorf("opcode %d references witness %d beyond current witness index %d", i, w, c.CurrentWitnessIndex)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}
