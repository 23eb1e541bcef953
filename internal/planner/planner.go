// Package planner implements the wedding budget estimation engine.
//
// It is a pure computation package: given a nominal budget and the
// adjustment factors a couple selects in the calculator, it produces the
// realistically allocatable budget and its distribution over the fixed
// spending categories. It performs no I/O and is safe to call concurrently.
package planner

import (
	"github.com/shopspring/decimal"
)

// Category is a spending category with its share of the total budget.
//
// The percentages across all categories are authored to sum to 100. This is
// not enforced at runtime, only by tests.
type Category struct {
	ID          string   `json:"id" example:"venue-catering"`                          // Stable identifier, referenced by budget items
	Name        string   `json:"name" example:"Venue & Catering"`                      // Display name
	Percentage  int64    `json:"percentage" example:"35"`                              // Share of the adjusted budget in percent
	Description string   `json:"description" example:"Venue rental, food & beverage"` // Guidance for the category
	Tips        []string `json:"tips"`                                                 // Advisory tips for the category
}

// GenericTip is attached to categories that have no specific advice.
const GenericTip = "Allocate wisely and track expenses"

// categories is the authoritative category table, in display order.
var categories = []Category{
	{
		ID:          "venue-catering",
		Name:        "Venue & Catering",
		Percentage:  35,
		Description: "Venue rental, food & beverages, service staff",
		Tips: []string{
			"Consider off-season dates for 20-30% savings",
			"All-inclusive packages often offer better value",
			"Negotiate room blocks for guest accommodations",
		},
	},
	{
		ID:          "decor-florals",
		Name:        "Decor & Florals",
		Percentage:  15,
		Description: "Mandap, stage, centerpieces, lighting",
		Tips: []string{
			"Use local, seasonal flowers to reduce costs",
			"Repurpose ceremony decor for reception",
			"LED candles are cheaper than real florals for ambiance",
		},
	},
	{
		ID:          "photography",
		Name:        "Photography & Video",
		Percentage:  12,
		Description: "Pre-wedding, wedding day, post-production",
		Tips: []string{
			"Book 12-18 months in advance for top photographers",
			"Consider a team (lead + assistants) for better coverage",
			"Drone footage adds cinematic value",
		},
	},
	{
		ID:          "entertainment",
		Name:        "Entertainment",
		Percentage:  8,
		Description: "DJ, live band, choreography, performances",
		Tips: []string{
			"Local bands are often more affordable",
			"DJ + live instruments is a great combo",
			"Plan sangeet acts early for choreography time",
		},
	},
	{
		ID:          "attire-beauty",
		Name:        "Attire & Beauty",
		Percentage:  10,
		Description: "Bridal, groom, makeup, jewelry",
		Tips: []string{
			"Designer trunk shows offer discounts",
			"Book hair/makeup trial 6 months ahead",
			"Consider rental jewelry for sangeet/cocktail",
		},
	},
	{
		ID:          "invitations",
		Name:        "Invitations & Stationery",
		Percentage:  3,
		Description: "Save-the-dates, invites, menus, signage",
	},
	{
		ID:          "guest-hospitality",
		Name:        "Guest Hospitality",
		Percentage:  8,
		Description: "Welcome bags, favors, transport",
	},
	{
		ID:          "wedding-planner",
		Name:        "Wedding Planner",
		Percentage:  5,
		Description: "Planning fees, coordination",
	},
	{
		ID:          "contingency",
		Name:        "Contingency",
		Percentage:  4,
		Description: "Buffer for unexpected expenses",
	},
}

// Categories returns the category table in display order.
//
// Categories without specific tips carry the generic fallback tip.
func Categories() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)

	for i := range result {
		if len(result[i].Tips) == 0 {
			result[i].Tips = []string{GenericTip}
		}
	}

	return result
}

// CategoryByID returns the category with the ID passed.
// The second return value reports whether the ID is known.
func CategoryByID(id string) (Category, bool) {
	for _, category := range Categories() {
		if category.ID == id {
			return category, true
		}
	}

	return Category{}, false
}

// destinationMultipliers maps destination keys to their cost factor.
var destinationMultipliers = map[string]decimal.Decimal{
	"udaipur":  decimal.NewFromFloat(1.4),
	"jaipur":   decimal.NewFromFloat(1.2),
	"jodhpur":  decimal.NewFromFloat(1.15),
	"goa":      decimal.NewFromFloat(1.25),
	"kerala":   decimal.NewFromFloat(1.1),
	"mumbai":   decimal.NewFromFloat(1.3),
	"delhi":    decimal.NewFromFloat(1.25),
	"dubai":    decimal.NewFromFloat(2.0),
	"thailand": decimal.NewFromFloat(1.5),
	"other":    decimal.NewFromFloat(1.0),
}

// styleMultipliers maps wedding style keys to their cost factor.
var styleMultipliers = map[string]decimal.Decimal{
	"intimate":    decimal.NewFromFloat(0.8),
	"classic":     decimal.NewFromFloat(1.0),
	"luxurious":   decimal.NewFromFloat(1.5),
	"royal":       decimal.NewFromFloat(2.0),
	"destination": decimal.NewFromFloat(1.3),
}

// Preset is one of the budget bands offered in the calculator. The value is
// the representative midpoint used for the computation.
type Preset struct {
	Label string          `json:"label" example:"₹25-50 Lakhs"`
	Value decimal.Decimal `json:"value" example:"3750000"`
	Tier  string          `json:"tier" example:"Classic Elegance"`
}

// Presets returns the budget bands offered in the calculator.
func Presets() []Preset {
	return []Preset{
		{Label: "₹15-25 Lakhs", Value: decimal.NewFromInt(2000000), Tier: "Intimate Luxury"},
		{Label: "₹25-50 Lakhs", Value: decimal.NewFromInt(3750000), Tier: "Classic Elegance"},
		{Label: "₹50-75 Lakhs", Value: decimal.NewFromInt(6250000), Tier: "Grand Celebration"},
		{Label: "₹75L - 1 Crore", Value: decimal.NewFromInt(8750000), Tier: "Royal Affair"},
		{Label: "₹1-2 Crore", Value: decimal.NewFromInt(15000000), Tier: "Ultra Luxury"},
		{Label: "₹2+ Crore", Value: decimal.NewFromInt(25000000), Tier: "Bespoke Extravagance"},
	}
}

// Events returns the identifiers of the events a wedding can consist of.
func Events() []string {
	return []string{"mehendi", "haldi", "sangeet", "cocktail", "wedding", "reception"}
}

// Option is a selectable key with its cost factor, used by the calculator
// frontend to render the choices.
type Option struct {
	Key        string          `json:"key" example:"udaipur"`
	Multiplier decimal.Decimal `json:"multiplier" example:"1.4"`
}

// destinationOrder fixes the display order of the destinations.
var destinationOrder = []string{
	"udaipur", "jaipur", "jodhpur", "goa", "kerala",
	"mumbai", "delhi", "dubai", "thailand", "other",
}

// styleOrder fixes the display order of the styles.
var styleOrder = []string{"intimate", "classic", "luxurious", "royal", "destination"}

// Destinations returns the destination options in display order.
func Destinations() []Option {
	result := make([]Option, 0, len(destinationOrder))
	for _, key := range destinationOrder {
		result = append(result, Option{Key: key, Multiplier: destinationMultipliers[key]})
	}

	return result
}

// Styles returns the style options in display order.
func Styles() []Option {
	result := make([]Option, 0, len(styleOrder))
	for _, key := range styleOrder {
		result = append(result, Option{Key: key, Multiplier: styleMultipliers[key]})
	}

	return result
}

// DestinationMultiplier returns the cost factor for a destination key.
// Unknown keys degrade to a neutral 1.0 so that the calculator stays usable
// when the reference table is incomplete.
func DestinationMultiplier(key string) decimal.Decimal {
	if m, ok := destinationMultipliers[key]; ok {
		return m
	}

	return decimal.NewFromInt(1)
}

// StyleMultiplier returns the cost factor for a style key. Unknown keys
// degrade to a neutral 1.0, same as DestinationMultiplier.
func StyleMultiplier(key string) decimal.Decimal {
	if m, ok := styleMultipliers[key]; ok {
		return m
	}

	return decimal.NewFromInt(1)
}
