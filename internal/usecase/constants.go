package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultComputeTimeout bounds a single balance or settlement run,
	// snapshot loading included.
	DefaultComputeTimeout = 10 * time.Second
)

// DefaultImbalanceTolerance is the largest |Σ balances| accepted without a
// data-integrity warning.
var DefaultImbalanceTolerance = decimal.RequireFromString("0.01")
