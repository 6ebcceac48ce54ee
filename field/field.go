// Package field defines the arithmetic capability used by every other
// component. Elements are gnark constraint.Element values; a Field engine
// supplies the modular arithmetic for a concrete prime field.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkforge/acvm/field/bn254"
	"github.com/zkforge/acvm/field/m31"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(m31.ScalarField) == 0 {
		return &m31.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
