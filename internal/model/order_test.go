package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{name: "pending to in-kitchen", from: StatusPending, to: StatusInKitchen, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "in-kitchen to out-for-delivery", from: StatusInKitchen, to: StatusOutForDelivery, allowed: true},
		{name: "in-kitchen to cancelled", from: StatusInKitchen, to: StatusCancelled, allowed: true},
		{name: "out-for-delivery to delivered", from: StatusOutForDelivery, to: StatusDelivered, allowed: true},
		{name: "out-for-delivery cannot cancel", from: StatusOutForDelivery, to: StatusCancelled, allowed: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPending, allowed: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, allowed: false},
		{name: "no skipping ahead", from: StatusPending, to: StatusDelivered, allowed: false},
		{name: "no going backwards", from: StatusInKitchen, to: StatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInKitchen.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
}

func TestMealTypeForMealsPerDay(t *testing.T) {
	tests := []struct {
		mealsPerDay int
		want        MealType
	}{
		{mealsPerDay: 1, want: MealTypeBreakfast},
		{mealsPerDay: 2, want: MealTypeBreakfastLunch},
		{mealsPerDay: 3, want: MealTypeAllMeals},
		{mealsPerDay: 4, want: MealTypeAllMeals},
		{mealsPerDay: 0, want: MealTypeBreakfast},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MealTypeForMealsPerDay(tt.mealsPerDay))
	}
}

func TestMealType_Valid(t *testing.T) {
	for _, m := range []MealType{
		MealTypeBreakfast, MealTypeLunch, MealTypeDinner,
		MealTypeBreakfastLunch, MealTypeLunchDinner,
		MealTypeBreakfastDinner, MealTypeAllMeals,
	} {
		assert.True(t, m.Valid(), string(m))
	}

	assert.False(t, MealType("").Valid())
	assert.False(t, MealType("brunch").Valid())
	assert.False(t, MealType("Breakfast").Valid())
}

func TestDietPreference_Valid(t *testing.T) {
	for _, d := range []DietPreference{
		DietNone, DietKeto, DietHighProtein, DietVegan,
		DietVegetarian, DietGlutenFree, DietDairyFree,
	} {
		assert.True(t, d.Valid(), string(d))
	}

	assert.False(t, DietPreference("").Valid())
	assert.False(t, DietPreference("carnivore").Valid())
	assert.False(t, DietPreference("Keto").Valid())
}

func TestOrderTypeForDuration(t *testing.T) {
	assert.Equal(t, OrderTypeWeekly, OrderTypeForDuration(DurationWeekly))
	assert.Equal(t, OrderTypeMonthly, OrderTypeForDuration(DurationMonthly))
}

func TestSummaryText(t *testing.T) {
	orderID := uuid.New()
	lines := []OrderLine{
		{OrderID: orderID, ItemName: "Margarita Pizza", Quantity: 2, UnitPrice: NewAmount(45, DefaultCurrency)},
		{OrderID: orderID, ItemName: "Italian Salad", Quantity: 1, UnitPrice: NewAmount(35, DefaultCurrency)},
	}

	got := SummaryText(lines, NewAmount(125, DefaultCurrency))

	assert.Contains(t, got, "- Margarita Pizza x2 = 90 SAR")
	assert.Contains(t, got, "- Italian Salad x1 = 35 SAR")
	assert.Contains(t, got, "Total: 125 SAR")
}

func TestLineItem_Validate(t *testing.T) {
	valid := LineItem{ID: "1", Name: "Margarita Pizza", UnitPrice: NewAmount(45, DefaultCurrency), Category: "PIZZA", Quantity: 1}
	assert.NoError(t, valid.Validate())

	missingID := valid
	missingID.ID = ""
	assert.ErrorIs(t, missingID.Validate(), ErrInvalidLineItem)

	missingName := valid
	missingName.Name = ""
	assert.ErrorIs(t, missingName.Validate(), ErrInvalidLineItem)

	negativePrice := valid
	negativePrice.UnitPrice = NewAmount(-1, DefaultCurrency)
	assert.ErrorIs(t, negativePrice.Validate(), ErrInvalidLineItem)
}
