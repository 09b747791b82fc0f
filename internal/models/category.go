package models

// Group is a category group of the allocation rule, e.g. "needs" in
// the 50/30/20 rule.
type Group string

const (
	GroupNeeds   Group = "needs"
	GroupWants   Group = "wants"
	GroupSavings Group = "savings"

	// GroupUncategorized collects spend that no rule group claims. It
	// is reserved and must not appear in an allocation rule.
	GroupUncategorized Group = "uncategorized"
)

// Category is a transaction category. Each category classifies itself
// into a group so that transactions feed the correct budget bucket
// without per-transaction configuration.
type Category string

const (
	CategoryHousing    Category = "HOUSING"
	CategoryUtilities  Category = "UTILITIES"
	CategoryGroceries  Category = "GROCERIES"
	CategoryTransport  Category = "TRANSPORT"
	CategoryInsurance  Category = "INSURANCE"
	CategoryHealthcare Category = "HEALTHCARE"

	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryRestaurants   Category = "RESTAURANTS"
	CategoryShopping      Category = "SHOPPING"
	CategoryHobbies       Category = "HOBBIES"
	CategoryTravel        Category = "TRAVEL"
	CategoryBeauty        Category = "BEAUTY"

	CategorySavingsAccount Category = "SAVINGS_ACCOUNT"
	CategoryInvestments    Category = "INVESTMENTS"
	CategoryDebtRepayment  Category = "DEBT_REPAYMENT"

	CategoryOther Category = "OTHER"
)

var categoryGroups = map[Category]Group{
	CategoryHousing:    GroupNeeds,
	CategoryUtilities:  GroupNeeds,
	CategoryGroceries:  GroupNeeds,
	CategoryTransport:  GroupNeeds,
	CategoryInsurance:  GroupNeeds,
	CategoryHealthcare: GroupNeeds,

	CategoryEntertainment: GroupWants,
	CategoryRestaurants:   GroupWants,
	CategoryShopping:      GroupWants,
	CategoryHobbies:       GroupWants,
	CategoryTravel:        GroupWants,
	CategoryBeauty:        GroupWants,

	CategorySavingsAccount: GroupSavings,
	CategoryInvestments:    GroupSavings,
	CategoryDebtRepayment:  GroupSavings,
}

// Group returns the category group the category belongs to.
// Unknown categories and CategoryOther return GroupUncategorized.
func (c Category) Group() Group {
	group, ok := categoryGroups[c]
	if !ok {
		return GroupUncategorized
	}

	return group
}
