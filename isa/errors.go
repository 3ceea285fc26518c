package isa

import "errors"

// Sentinel error kinds. LineError (package asm) wraps these with source
// position so callers can errors.Is against a stable kind rather than
// matching message strings.
var (
	ErrImmediateRange   = errors.New("immediate out of range")
	ErrUnknownLabel     = errors.New("unknown label")
	ErrMalformedOperand = errors.New("malformed operand")
	ErrUnknownMnemonic  = errors.New("unknown mnemonic")
	ErrUnknownRegister  = errors.New("unknown register")
	ErrDecode           = errors.New("decode error")
	ErrInternalWidth    = errors.New("internal error: word not 32 bits")
)
