// Package purchase aggregates line items bought by a customer principal.
// It is a pure value layer: it reads principal identities for display and
// never mutates the registry.
package purchase

import (
	"fmt"
	"strings"

	"custos/internal/auth/models"
)

// Product is something purchasable. Price is in minor currency units so
// totals stay exact integers.
type Product struct {
	Name  string
	Price int64
}

// Describe renders the product for cart summaries.
func (p Product) Describe() string {
	return fmt.Sprintf("%s (%d.%02d)", p.Name, p.Price/100, p.Price%100)
}

// LineItem pairs a product with a quantity.
type LineItem struct {
	Product  Product
	Quantity int
}

// Cart collects a customer's purchases. RegisteredBy records which principal
// entered the purchases, which need not be the customer.
type Cart struct {
	Customer     *models.Principal
	RegisteredBy *models.Principal
	items        []LineItem
}

// NewCart builds an empty cart for customer, registered by registeredBy.
func NewCart(customer, registeredBy *models.Principal) *Cart {
	return &Cart{Customer: customer, RegisteredBy: registeredBy}
}

// AddItem appends a product with the given quantity.
func (c *Cart) AddItem(product Product, quantity int) {
	c.items = append(c.items, LineItem{Product: product, Quantity: quantity})
}

// RemoveItem drops every line item whose product carries the given name.
func (c *Cart) RemoveItem(name string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.Name != name {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Items returns a snapshot of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums price times quantity over all line items.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// Describe renders the itemized summary: customer, each line item, the
// total, and who registered the purchases.
func (c *Cart) Describe() string {
	if len(c.items) == 0 {
		return fmt.Sprintf("Customer %s has not bought anything yet.\nPurchases registered by %s",
			c.Customer.Username, c.RegisteredBy.Username)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customer %s bought:\n", c.Customer.Username)
	for _, item := range c.items {
		fmt.Fprintf(&b, "- %s, Quantity: %d\n", item.Product.Describe(), item.Quantity)
	}
	total := c.Total()
	fmt.Fprintf(&b, "Total: %d.%02d\n", total/100, total%100)
	fmt.Fprintf(&b, "Purchases registered by %s", c.RegisteredBy.Username)
	return b.String()
}
