package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant is the stored account type tag.
type Variant string

const (
	// Current is the standard variant.
	Current Variant = "Current"
	// Saving is the restricted variant: no withdrawals, accrues interest.
	Saving Variant = "Saving"
)

// Policy holds the rules attached to a variant.
type Policy struct {
	Minimum         decimal.Decimal
	CanWithdraw     bool
	AccruesInterest bool
}

var policies = map[Variant]Policy{
	Current: {
		Minimum:     decimal.NewFromInt(2500),
		CanWithdraw: true,
	},
	Saving: {
		Minimum:         decimal.NewFromInt(3000),
		AccruesInterest: true,
	},
}

// Variants lists the known variants in menu order.
func Variants() []Variant {
	return []Variant{Current, Saving}
}

func (v Variant) Policy() (Policy, error) {
	p, ok := policies[v]
	if !ok {
		return Policy{}, fmt.Errorf("%w: '%s'", ErrUnknownVariant, string(v))
	}
	return p, nil
}

// Minimum returns the floor for v, or zero for an unknown tag.
func (v Variant) Minimum() decimal.Decimal {
	return policies[v].Minimum
}

func (v Variant) Valid() bool {
	_, ok := policies[v]
	return ok
}

func (v Variant) String() string {
	return string(v)
}

// ParseVariant accepts the stored tags and the descriptive names
// ("standard", "restricted") in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current", "standard":
		return Current, nil
	case "saving", "savings", "restricted":
		return Saving, nil
	default:
		return "", fmt.Errorf("%w: '%s' (must be Current or Saving)", ErrUnknownVariant, s)
	}
}
