package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidRule           = errors.New("the rule percentages must be non-negative and sum to exactly 100")
	ErrIncomeNegative        = errors.New("the total income must not be negative")
	ErrCommitmentNegative    = errors.New("fixed commitments must not be negative")
	ErrCommitmentGroup       = errors.New("fixed commitments must reference a group declared by the rule")
	ErrNoActiveConfiguration = errors.New("there is no budget configuration covering the requested instant")
	ErrConfigurationOverlap  = errors.New("the user already has a budget configuration overlapping this period")
)

// RuleEntry assigns a percentage of the total income to one category
// group.
type RuleEntry struct {
	Group      Group           `json:"group"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Rule is an ordered allocation rule. The order matters: the rounding
// remainder of the allocation goes to the last entry.
type Rule []RuleEntry

// Rule503020 returns the 50/30/20 rule: 50% needs, 30% wants,
// 20% savings.
func Rule503020() Rule {
	return Rule{
		{Group: GroupNeeds, Percentage: decimal.NewFromInt(50)},
		{Group: GroupWants, Percentage: decimal.NewFromInt(30)},
		{Group: GroupSavings, Percentage: decimal.NewFromInt(20)},
	}
}

// Validate checks that the rule is non-empty, does not use reserved or
// duplicate groups, has no negative percentages and that the
// percentages sum to exactly 100.
func (r Rule) Validate() error {
	if len(r) == 0 {
		return ErrInvalidRule
	}

	sum := decimal.Zero
	for i, entry := range r {
		if entry.Percentage.IsNegative() {
			return ErrInvalidRule
		}

		if entry.Group == GroupUncategorized {
			return ErrInvalidRule
		}

		if slices.IndexFunc(r[:i], func(e RuleEntry) bool { return e.Group == entry.Group }) != -1 {
			return ErrInvalidRule
		}

		sum = sum.Add(entry.Percentage)
	}

	if !sum.Equal(decimal.NewFromInt(100)) {
		return ErrInvalidRule
	}

	return nil
}

// Declares reports whether the rule has an entry for the group.
func (r Rule) Declares(group Group) bool {
	return slices.IndexFunc(r, func(e RuleEntry) bool { return e.Group == group }) != -1
}

// Groups returns the rule's groups in rule order.
func (r Rule) Groups() []Group {
	groups := make([]Group, 0, len(r))
	for _, entry := range r {
		groups = append(groups, entry.Group)
	}

	return groups
}

// Configuration is the active allocation plan of a user for one budget
// period.
type Configuration struct {
	ID               uuid.UUID                 `json:"id"`
	UserID           uuid.UUID                 `json:"userId"`
	Period           types.Period              `json:"period"`
	TotalIncome      decimal.Decimal           `json:"totalIncome"`
	Rule             Rule                      `json:"rule"`
	FixedCommitments map[Group]decimal.Decimal `json:"fixedCommitments,omitempty"` // Known recurring obligations reserved against their group's cap
}

// Validate checks all configuration invariants.
func (c Configuration) Validate() error {
	if err := c.Rule.Validate(); err != nil {
		return err
	}

	if c.TotalIncome.IsNegative() {
		return ErrIncomeNegative
	}

	for group, amount := range c.FixedCommitments {
		if amount.IsNegative() {
			return ErrCommitmentNegative
		}

		if !c.Rule.Declares(group) {
			return ErrCommitmentGroup
		}
	}

	return nil
}

// Active reports whether the configuration covers the given instant.
func (c Configuration) Active(asOf time.Time) bool {
	return c.Period.Contains(asOf)
}
