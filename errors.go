package brokerage

import "errors"

// ErrInvalidState is wrapped by every entity mutation that would break an
// invariant (negative cash, negative shares, ...). Business-rule failures
// (insufficient funds, closed market) are not errors: they are reported as
// a false or nil result and leave state untouched.
var ErrInvalidState = errors.New("invalid state")
