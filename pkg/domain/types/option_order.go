package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// OptionOrder declares which end of a select question's option list is
// favorable. Ascending means the last option earns full points, descending
// means the first option does.
type OptionOrder string

const (
	OrderAscending  OptionOrder = "ascending"
	OrderDescending OptionOrder = "descending"
)

// Validate checks if the OptionOrder is a known ordering
func (o OptionOrder) Validate() error {
	switch o {
	case OrderAscending, OrderDescending:
		return nil
	default:
		return goerr.New("unknown option order", goerr.V("order", o))
	}
}

// String returns the string representation of OptionOrder
func (o OptionOrder) String() string {
	return string(o)
}
