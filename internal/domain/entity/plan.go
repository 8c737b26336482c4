package entity

// Plan is a purchasable credit bundle. Plans are display data for the buy
// flow; selecting one only acknowledges the choice until payments land.
type Plan struct {
	ID       string
	Name     string
	Credits  int
	PriceUSD float64
	Popular  bool
}

// PricingPlans returns the fixed plan table shown in the buy-credits flow
func PricingPlans() []Plan {
	return []Plan{
		{ID: "starter", Name: "Starter", Credits: 100, PriceUSD: 4.99},
		{ID: "pro", Name: "Pro", Credits: 500, PriceUSD: 19.99, Popular: true},
		{ID: "agency", Name: "Agency", Credits: 1500, PriceUSD: 49.99},
	}
}
