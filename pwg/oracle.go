package pwg

import (
	"github.com/zkforge/acvm/acir"
	"github.com/zkforge/acvm/field"
)

// solveOracle either assigns the outputs of a resumed oracle, or evaluates
// its remaining input expressions so the request can be handed to the caller.
// Input values computed on earlier attempts are kept, so a partially
// evaluated oracle resumes where it stalled.
func solveOracle(f field.Field, witness *acir.WitnessMap, data *acir.OracleData) (OpcodeResolution, error) {
	if len(data.OutputValues) == len(data.Outputs) {
		for i, w := range data.Outputs {
			if err := InsertValue(w, data.OutputValues[i], witness); err != nil {
				return 0, err
			}
		}
		return OpcodeSolved, nil
	}

	for i := len(data.InputValues); i < len(data.Inputs); i++ {
		v, err := getValue(f, data.Inputs[i], witness)
		if err != nil {
			return 0, err
		}
		data.InputValues = append(data.InputValues, v)
	}
	return OpcodeRequiresOracleData, nil
}
