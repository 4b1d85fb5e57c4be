package cart

import (
	"pulse-meals/internal/model"
)

// Event is a snapshot of the cart delivered to observers after every
// mutation.
type Event struct {
	Items []model.LineItem
	Total model.Amount
}

// Cart is the authoritative set of line items a customer intends to
// purchase. It is private, session-scoped state: one logical thread of
// control mutates it, so the aggregate itself carries no locking.
type Cart struct {
	items     []model.LineItem
	observers map[int]func(Event)
	nextObs   int
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{observers: make(map[int]func(Event))}
}

// AddItem inserts a line item, or increments the quantity of an existing
// item with the same id. A candidate without an explicit quantity
// defaults to 1. An invalid candidate is rejected and the cart is left
// unchanged.
func (c *Cart) AddItem(candidate model.LineItem) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	if candidate.Quantity < 1 {
		candidate.Quantity = 1
	}

	if i := c.indexOf(candidate.ID); i >= 0 {
		c.items[i].Quantity += candidate.Quantity
	} else {
		c.items = append(c.items, candidate)
	}

	c.notify()
	return nil
}

// UpdateQuantity sets the quantity for the item with id. A quantity
// below 1 removes the item; the cart never holds a zero-quantity line.
// Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if quantity < 1 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	} else {
		c.items[i].Quantity = quantity
	}
	c.notify()
}

// RemoveItem removes the line item with id if present.
func (c *Cart) RemoveItem(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notify()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.items) == 0 {
		return
	}
	c.items = nil
	c.notify()
}

// Total recomputes the sum of unit price times quantity over all items.
// It is derived on demand and can never drift from the item list.
func (c *Cart) Total() model.Amount {
	total := model.Amount{Currency: model.DefaultCurrency}
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []model.LineItem {
	items := make([]model.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Subscription returns the subscription line item if the cart holds one.
// The reference flow allows at most one; the first match wins.
func (c *Cart) Subscription() (model.LineItem, bool) {
	for _, item := range c.items {
		if item.IsSubscription() {
			return item, true
		}
	}
	return model.LineItem{}, false
}

// Subscribe registers fn to be called after every cart mutation. The
// returned function unregisters the observer and is safe to call more
// than once.
func (c *Cart) Subscribe(fn func(Event)) func() {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		delete(c.observers, id)
	}
}

func (c *Cart) notify() {
	if len(c.observers) == 0 {
		return
	}
	event := Event{Items: c.Items(), Total: c.Total()}
	for _, fn := range c.observers {
		fn(event)
	}
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
