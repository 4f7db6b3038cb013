package model

// SubscriptionTier enumerates subscription plans.
type SubscriptionTier string

const (
	// SubscriptionFree is assigned on registration.
	SubscriptionFree SubscriptionTier = "Free"
	// SubscriptionBasic is the middle tier.
	SubscriptionBasic SubscriptionTier = "Basic"
	// SubscriptionPremium is the top tier.
	SubscriptionPremium SubscriptionTier = "Premium"
)

var tierQuotas = map[SubscriptionTier]int{
	SubscriptionFree:    5,
	SubscriptionBasic:   25,
	SubscriptionPremium: 100,
}

// Valid reports whether t is a known tier.
func (t SubscriptionTier) Valid() bool {
	_, ok := tierQuotas[t]
	return ok
}

// DefaultMaxPlants returns the plant quota that comes with the tier.
// Unknown tiers get the Free quota.
func (t SubscriptionTier) DefaultMaxPlants() int {
	if q, ok := tierQuotas[t]; ok {
		return q
	}
	return tierQuotas[SubscriptionFree]
}
