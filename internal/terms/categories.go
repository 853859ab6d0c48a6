package terms

import (
	"encoding/json"
	"slices"
)

// Category is one of the three fixed classification buckets for terms.
type Category string

// Valid term categories.
const (
	CategoryAction     Category = "action"
	CategoryTicketType Category = "ticket_type"
	CategoryComponent  Category = "component"
)

var categories = []Category{
	CategoryAction,
	CategoryTicketType,
	CategoryComponent,
}

// Categories returns the list of valid term categories.
func Categories() []Category {
	return categories
}

// UnmarshalJSON validates that the decoded string is a known category value.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Category(raw)
	if !slices.Contains(categories, v) {
		return ErrInvalidCategory
	}
	*c = v
	return nil
}

// ParseCategory validates a string as a known term category.
// Returns ErrInvalidCategory if the value is not recognized.
func ParseCategory(s string) (Category, error) {
	v := Category(s)
	if !slices.Contains(categories, v) {
		return "", ErrInvalidCategory
	}
	return v, nil
}
