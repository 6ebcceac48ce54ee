package acir

// BlockID distinguishes memory blocks within one circuit.
type BlockID uint32

// MemOp is one addressed access in a memory trace. Operation selects the
// access kind (0 reads, anything else writes), Index addresses the cell and
// Value carries the read target or the written value.
type MemOp struct {
	Operation Expression
	Index     Expression
	Value     Expression
}

// MemoryBlock is an ordered memory-access trace. Accesses must be resolved in
// trace order; partially resolved traces persist across solving calls.
type MemoryBlock struct {
	ID    BlockID
	Len   uint32
	Trace []MemOp
}
