package domain

import (
	"errors"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

// Errors
var (
	ErrInvalidAmount    = tokendomain.ErrInvalidAmount
	ErrInvalidPrice     = errors.New("invalid price")
	ErrNoOrdersFound    = errors.New("no orders found")
	ErrQueryFailed      = errors.New("query failed")
	ErrSubmissionFailed = errors.New("submission failed")
	ErrTxPending        = chaindomain.ErrTxPending
)
