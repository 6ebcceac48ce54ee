package pwg

import (
	"github.com/zkforge/acvm/acir"
)

// solveBlackBoxFuncCall dispatches a blackbox call to the backend once every
// declared input is assigned. Shape violations are fatal and detected before
// dispatch.
func solveBlackBoxFuncCall(backend PartialWitnessGenerator, witness *acir.WitnessMap, call acir.BlackBoxFuncCall) (OpcodeResolution, error) {
	for _, input := range call.Inputs {
		if !witness.Contains(input.Witness) {
			return 0, &MissingAssignmentError{Witness: input.Witness}
		}
	}
	if err := validateCallShape(call); err != nil {
		return 0, err
	}

	switch call.Name {
	case acir.AES:
		return backend.AES(witness, call.Inputs, call.Outputs)
	case acir.AND:
		return backend.And(witness, call.Inputs, call.Outputs)
	case acir.XOR:
		return backend.Xor(witness, call.Inputs, call.Outputs)
	case acir.RANGE:
		return backend.Range(witness, call.Inputs, call.Outputs)
	case acir.SHA256:
		return backend.SHA256(witness, call.Inputs, call.Outputs)
	case acir.Blake2s:
		return backend.Blake2s(witness, call.Inputs, call.Outputs)
	case acir.ComputeMerkleRoot:
		return backend.ComputeMerkleRoot(witness, call.Inputs, call.Outputs)
	case acir.SchnorrVerify:
		return backend.SchnorrVerify(witness, call.Inputs, call.Outputs)
	case acir.Pedersen:
		return backend.Pedersen(witness, call.Inputs, call.Outputs)
	case acir.HashToField128Security:
		return backend.HashToField128Security(witness, call.Inputs, call.Outputs)
	case acir.EcdsaSecp256k1:
		return backend.EcdsaSecp256k1(witness, call.Inputs, call.Outputs)
	case acir.FixedBaseScalarMul:
		return backend.FixedBaseScalarMul(witness, call.Inputs, call.Outputs)
	case acir.Keccak256:
		return backend.Keccak256(witness, call.Inputs, call.Outputs)
	default:
		return 0, &UnexpectedOpcodeError{Expected: "a black box function", Got: call.Name.String()}
	}
}

func validateCallShape(call acir.BlackBoxFuncCall) error {
	switch call.Name {
	case acir.AND, acir.XOR:
		if len(call.Inputs) != 2 {
			return &IncorrectNumFunctionArgumentsError{Expected: 2, Func: call.Name, Got: len(call.Inputs)}
		}
		if len(call.Outputs) != 1 {
			return &IncorrectNumFunctionArgumentsError{Expected: 1, Func: call.Name, Got: len(call.Outputs)}
		}
	case acir.RANGE:
		if len(call.Inputs) != 1 {
			return &IncorrectNumFunctionArgumentsError{Expected: 1, Func: call.Name, Got: len(call.Inputs)}
		}
	case acir.HashToField128Security, acir.EcdsaSecp256k1, acir.SchnorrVerify:
		if len(call.Outputs) != 1 {
			return &IncorrectNumFunctionArgumentsError{Expected: 1, Func: call.Name, Got: len(call.Outputs)}
		}
	}
	return nil
}
