package domain

import "errors"

var (
	// ErrUnknownAssetClass is returned when an asset class id is not in the catalog.
	ErrUnknownAssetClass = errors.New("unknown asset class")
	// ErrUnknownRiskProfile is returned when a risk profile id is not in the catalog.
	ErrUnknownRiskProfile = errors.New("unknown risk profile")
	// ErrInvalidRequest marks requests rejected by boundary validation (files, flags, HTTP).
	ErrInvalidRequest = errors.New("invalid simulation request")
)
