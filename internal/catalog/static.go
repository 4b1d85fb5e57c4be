package catalog

import "pulse-meals/internal/model"

// staticCatalog implements Catalog over in-memory tables.
type staticCatalog struct {
	menu     []MenuItem
	menuIdx  map[string]MenuItem
	plans    []Plan
	planIdx  map[model.PlanID]Plan
	addons   []AddonOption
	addonIdx map[model.Addon]AddonOption
}

// newStaticCatalog builds the lookup indexes for the given tables.
func newStaticCatalog(menu []MenuItem, plans []Plan, addons []AddonOption) *staticCatalog {
	c := &staticCatalog{
		menu:     menu,
		menuIdx:  make(map[string]MenuItem, len(menu)),
		plans:    plans,
		planIdx:  make(map[model.PlanID]Plan, len(plans)),
		addons:   addons,
		addonIdx: make(map[model.Addon]AddonOption, len(addons)),
	}
	for _, m := range menu {
		c.menuIdx[m.ID] = m
	}
	for _, p := range plans {
		c.planIdx[p.ID] = p
	}
	for _, a := range addons {
		c.addonIdx[a.ID] = a
	}
	return c
}

func (c *staticCatalog) MenuItems() []MenuItem { return c.menu }

func (c *staticCatalog) MenuItem(id string) (MenuItem, bool) {
	m, ok := c.menuIdx[id]
	return m, ok
}

func (c *staticCatalog) Plans() []Plan { return c.plans }

func (c *staticCatalog) Plan(id model.PlanID) (Plan, bool) {
	p, ok := c.planIdx[id]
	return p, ok
}

func (c *staticCatalog) Addons() []AddonOption { return c.addons }

func (c *staticCatalog) Addon(id model.Addon) (AddonOption, bool) {
	a, ok := c.addonIdx[id]
	return a, ok
}

// NewStatic returns the built-in catalogue used when no external
// catalogue file is configured.
func NewStatic() Catalog {
	return newStaticCatalog(defaultMenu(), defaultPlans(), defaultAddons())
}

func defaultPlans() []Plan {
	return []Plan{
		{
			ID:          model.PlanWeightLoss,
			Name:        "Weight Loss",
			Calories:    "1200-1400 kcal",
			Description: "Designed for healthy weight management with portion-controlled, nutrient-dense meals",
			BasePrice:   model.NewAmount(299, model.DefaultCurrency),
			MealPlan: model.MealPlan{
				Breakfast: "Halloumi Salad",
				Lunch:     "Chicken Cheese Garlic Bread",
				Dinner:    "Mix Veg Salad",
			},
		},
		{
			ID:          model.PlanBalanced,
			Name:        "Balanced Nutrition",
			Calories:    "1500-1800 kcal",
			Description: "Perfect for maintaining a healthy lifestyle with well-balanced, delicious meals",
			BasePrice:   model.NewAmount(349, model.DefaultCurrency),
			Popular:     true,
			MealPlan: model.MealPlan{
				Breakfast: "Italian Salad",
				Lunch:     "Special Sauce Pasta",
				Dinner:    "Pepperoni Pizza",
			},
		},
		{
			ID:          model.PlanMuscleGain,
			Name:        "Muscle Gain",
			Calories:    "2000-2500 kcal",
			Description: "High-protein meals designed to support muscle building and recovery",
			BasePrice:   model.NewAmount(399, model.DefaultCurrency),
			MealPlan: model.MealPlan{
				Breakfast: "Egg Toast and Garlic Bread",
				Lunch:     "Beef Ballistic Pizza",
				Dinner:    "Beef Bolognese Spaghetti Pasta",
			},
		},
	}
}

func defaultAddons() []AddonOption {
	return []AddonOption{
		{
			ID:          model.AddonSnacks,
			Name:        "Healthy Snacks",
			Description: "2 nutritious snacks per day",
			Price:       model.NewAmount(89, model.DefaultCurrency),
		},
		{
			ID:          model.AddonDetox,
			Name:        "Detox Drinks",
			Description: "Daily cold-pressed juices",
			Price:       model.NewAmount(129, model.DefaultCurrency),
		},
		{
			ID:          model.AddonSupplements,
			Name:        "Daily Supplements",
			Description: "Vitamins and minerals pack",
			Price:       model.NewAmount(159, model.DefaultCurrency),
		},
	}
}

func defaultMenu() []MenuItem {
	sar := func(major int64) model.Amount { return model.NewAmount(major, model.DefaultCurrency) }
	return []MenuItem{
		{ID: "1", Category: "PASTA", Name: "White Sauce Pasta", Description: "Creamy, cheesy, and rich with a smooth finish", Price: sar(42)},
		{ID: "2", Category: "PASTA", Name: "Red Sauce Pasta", Description: "Tangy tomato blend with herbs and seasoning", Price: sar(39)},
		{ID: "3", Category: "PIZZA", Name: "Pepperoni Pizza", Description: "Crispy pepperoni layered over cheesy perfection", Price: sar(55)},
		{ID: "4", Category: "PIZZA", Name: "Margarita Pizza", Description: "Classic tomato, mozzarella, and fresh basil combo", Price: sar(45)},
		{ID: "5", Category: "SALAD", Name: "Halloumi Salad", Description: "Grilled halloumi on crisp greens and veggies", Price: sar(38)},
		{ID: "6", Category: "SALAD", Name: "Italian Salad", Description: "Olives, cherry tomatoes, herbs, and vinaigrette dressing", Price: sar(35)},
		{ID: "7", Category: "BREAD TOASTS", Name: "Chicken Cheese Garlic Bread", Description: "Cheesy garlic toast topped with tender chicken", Price: sar(32)},
		{ID: "8", Category: "BREAD TOASTS", Name: "Cheese Garlic Bread", Description: "Crispy bread topped with gooey garlic cheese", Price: sar(28)},
	}
}
