package pwg

import (
	"math"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// Blocks carries per-block memory-trace state across solving calls. It must
// start empty for a fresh circuit and be handed back verbatim between rounds
// of a multi-round solve.
type Blocks struct {
	blocks map[acir.BlockID]*blockSolver
}

func NewBlocks() *Blocks {
	return &Blocks{blocks: make(map[acir.BlockID]*blockSolver)}
}

// blockSolver resolves one block's trace under sequential consistency: an
// access is attempted only after every earlier access in the trace resolved.
type blockSolver struct {
	memory           map[uint32]constraint.Element
	solvedOperations int
}

func (bs *Blocks) solve(f field.Field, witness *acir.WitnessMap, block acir.MemoryBlock) (OpcodeResolution, error) {
	if bs.blocks == nil {
		bs.blocks = make(map[acir.BlockID]*blockSolver)
	}
	solver, ok := bs.blocks[block.ID]
	if !ok {
		solver = &blockSolver{memory: make(map[uint32]constraint.Element)}
		bs.blocks[block.ID] = solver
	}
	if err := solver.solve(f, witness, block.Trace); err != nil {
		return 0, err
	}
	return OpcodeSolved, nil
}

func (s *blockSolver) solve(f field.Field, witness *acir.WitnessMap, trace []acir.MemOp) error {
	for _, op := range trace[s.solvedOperations:] {
		operation, err := getValue(f, op.Operation, witness)
		if err != nil {
			return err
		}
		indexVal, err := getValue(f, op.Index, witness)
		if err != nil {
			return err
		}
		index64, fits := f.Uint64(indexVal)
		if !fits || index64 > math.MaxUint32 {
			return &UnsatisfiedConstraintError{}
		}
		index := uint32(index64)

		if operation.IsZero() {
			if err := s.solveRead(f, witness, index, op.Value); err != nil {
				return err
			}
		} else {
			value, err := getValue(f, op.Value, witness)
			if err != nil {
				return err
			}
			s.memory[index] = value
		}
		s.solvedOperations++
	}
	return nil
}

// solveRead equates the value expression with the stored cell, assigning a
// single remaining unknown if there is one.
func (s *blockSolver) solveRead(f field.Field, witness *acir.WitnessMap, index uint32, value acir.Expression) error {
	stored, ok := s.memory[index]
	if !ok {
		// The write feeding this read has not resolved yet.
		if w, unknown := firstUnknown(value, witness); unknown {
			return &MissingAssignmentError{Witness: w}
		}
		return &TooManyUnknownsError{Expr: value}
	}
	read := value.Clone()
	read.QC = f.Sub(read.QC, stored)
	_, err := solveArithmetic(f, witness, read)
	return err
}

func firstUnknown(e acir.Expression, witness *acir.WitnessMap) (acir.Witness, bool) {
	for _, t := range e.MulTerms {
		if !witness.Contains(t.WL) {
			return t.WL, true
		}
		if !witness.Contains(t.WR) {
			return t.WR, true
		}
	}
	for _, t := range e.LinearCombinations {
		if !witness.Contains(t.W) {
			return t.W, true
		}
	}
	return 0, false
}
