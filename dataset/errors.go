package dataset

import "errors"

var (
	ErrMissingColumn  = errors.New("record must have an address and an amount column")
	ErrInvalidAddress = errors.New("invalid hex address")
	ErrInvalidAmount  = errors.New("amount is not a base-10 uint256")
	ErrNoRecords      = errors.New("dataset contains no records")
)
