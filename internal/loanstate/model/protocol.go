// Package model defines domain models for loan-state computation.
package model

// Protocol identifies the lending protocol a loan state belongs to.
type Protocol string

var (
	// NostraAlpha is the Nostra Alpha lending protocol on StarkNet.
	NostraAlpha Protocol = "Nostra_alpha"
)

// Asset is the symbol of an underlying token, e.g. ETH or USDC.
type Asset string
