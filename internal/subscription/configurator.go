package subscription

import (
	"pulse-meals/internal/catalog"
	"pulse-meals/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reference cadence baked into each plan's weekly base rate: the base
// price covers 3 meals a day, 5 days a week.
const (
	referenceMealsPerDay = 3
	referenceDaysPerWeek = 5

	minMealsPerDay = 1
	maxMealsPerDay = 4
	minDaysPerWeek = 3
	maxDaysPerWeek = 7

	// A monthly subscription bills 4 weeks at once with a 10% discount
	// baked into the multiplier.
	monthlyWeeks    = 4
	monthlyDiscount = 0.9
)

// Request captures a customer's plan choice and customisation sliders.
type Request struct {
	PlanID      model.PlanID   `json:"planId"`
	Duration    model.Duration `json:"duration"`
	MealsPerDay int            `json:"mealsPerDay"`
	DaysPerWeek int            `json:"daysPerWeek"`
	Addons      []model.Addon  `json:"addons,omitempty"`
}

// Quote is a priced breakdown of a subscription request.
type Quote struct {
	Plan        catalog.Plan          `json:"plan"`
	Duration    model.Duration        `json:"duration"`
	MealsPerDay int                   `json:"mealsPerDay"`
	DaysPerWeek int                   `json:"daysPerWeek"`
	Addons      []catalog.AddonOption `json:"addons,omitempty"`
	Price       model.Amount          `json:"price"`
}

// Configurator turns a plan choice, a duration, meal and day cadence and
// a set of add-ons into one fully priced, storable subscription line
// item.
type Configurator struct {
	catalog catalog.Catalog
	logger  zerolog.Logger
}

// NewConfigurator creates a subscription configurator over the given
// catalogue.
func NewConfigurator(cat catalog.Catalog, logger zerolog.Logger) *Configurator {
	return &Configurator{
		catalog: cat,
		logger:  logger.With().Str("component", "subscription-configurator").Logger(),
	}
}

// Configure validates and prices the request and returns the resulting
// cart line item. The cadence sliders are clamped to their declared
// ranges; an unknown plan id is an error.
func (c *Configurator) Configure(req Request) (model.LineItem, error) {
	quote, err := c.Price(req)
	if err != nil {
		return model.LineItem{}, err
	}

	addonIDs := make([]model.Addon, 0, len(quote.Addons))
	for _, a := range quote.Addons {
		addonIDs = append(addonIDs, a.ID)
	}

	item := model.LineItem{
		ID:        uuid.NewString(),
		Name:      quote.Plan.Name + " Subscription",
		UnitPrice: quote.Price,
		Category:  model.CategorySubscription,
		Quantity:  1,
		Details: &model.SubscriptionDetails{
			PlanID:      quote.Plan.ID,
			PlanName:    quote.Plan.Name,
			Duration:    quote.Duration,
			MealsPerDay: quote.MealsPerDay,
			DaysPerWeek: quote.DaysPerWeek,
			Addons:      addonIDs,
			MealPlan:    quote.Plan.MealPlan,
		},
	}

	c.logger.Debug().
		Str("plan_id", string(quote.Plan.ID)).
		Str("duration", string(quote.Duration)).
		Int("meals_per_day", quote.MealsPerDay).
		Int("days_per_week", quote.DaysPerWeek).
		Str("price", quote.Price.String()).
		Msg("subscription configured")

	return item, nil
}

// Price computes the subscription price for the request without building
// a line item.
//
// The algorithm scales the plan's weekly base rate by the chosen meal
// and day cadence, adds the fixed add-on prices, applies the duration
// multiplier, and rounds to the nearest whole currency unit.
func (c *Configurator) Price(req Request) (Quote, error) {
	plan, ok := c.catalog.Plan(req.PlanID)
	if !ok {
		c.logger.Warn().Str("plan_id", string(req.PlanID)).Msg("unknown subscription plan")
		return Quote{}, model.ErrUnknownPlan
	}

	duration := req.Duration
	if duration != model.DurationMonthly {
		duration = model.DurationWeekly
	}

	mealsPerDay := clamp(req.MealsPerDay, minMealsPerDay, maxMealsPerDay)
	daysPerWeek := clamp(req.DaysPerWeek, minDaysPerWeek, maxDaysPerWeek)

	base := plan.BasePrice.MajorFloat()
	base *= float64(mealsPerDay) / referenceMealsPerDay
	base *= float64(daysPerWeek) / referenceDaysPerWeek

	var addonTotal float64
	seen := make(map[model.Addon]bool, len(req.Addons))
	addons := make([]catalog.AddonOption, 0, len(req.Addons))
	for _, id := range req.Addons {
		if seen[id] {
			continue
		}
		seen[id] = true
		addon, ok := c.catalog.Addon(id)
		if !ok {
			c.logger.Warn().Str("addon", string(id)).Msg("ignoring unknown add-on")
			continue
		}
		addonTotal += addon.Price.MajorFloat()
		addons = append(addons, addon)
	}

	subtotal := base + addonTotal
	if duration == model.DurationMonthly {
		subtotal = subtotal * monthlyWeeks * monthlyDiscount
	}

	return Quote{
		Plan:        plan,
		Duration:    duration,
		MealsPerDay: mealsPerDay,
		DaysPerWeek: daysPerWeek,
		Addons:      addons,
		Price:       model.RoundToAmount(subtotal, plan.BasePrice.Currency),
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
