package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority represents a task priority level.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ParsePriority maps user text onto a priority level, case-insensitively.
// Text matching none of the four levels fails with ErrInvalidPriority.
func ParsePriority(text string) (Priority, error) {
	switch strings.ToLower(text) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	default:
		return "", ErrInvalidPriority
	}
}

// UnmarshalJSON rejects anything outside the four levels, so a
// backing file with a rogue priority fails to load as a whole.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch Priority(name) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		*p = Priority(name)
		return nil
	default:
		return fmt.Errorf("unknown priority %q", name)
	}
}

// Category classifies a task. The four fixed variants encode in the
// backing file as their bare name ("Personal", "Work", "Shopping",
// "Health"); a user-defined category encodes as {"Other": "<label>"}.
type Category struct {
	name  string // fixed variant name, empty for user-defined
	label string // set only for user-defined categories
}

// Fixed category variants.
var (
	CategoryPersonal = Category{name: "Personal"}
	CategoryWork     = Category{name: "Work"}
	CategoryShopping = Category{name: "Shopping"}
	CategoryHealth   = Category{name: "Health"}
)

// OtherCategory returns a user-defined category with the given label.
func OtherCategory(label string) Category {
	return Category{label: label}
}

// ParseCategory maps user text onto a category. Text matching a fixed
// variant case-insensitively selects it; any other text becomes a
// user-defined category with the text kept verbatim. ParseCategory
// never fails.
func ParseCategory(text string) Category {
	switch strings.ToLower(text) {
	case "personal":
		return CategoryPersonal
	case "work":
		return CategoryWork
	case "shopping":
		return CategoryShopping
	case "health":
		return CategoryHealth
	default:
		return Category{label: text}
	}
}

// Label returns the display name: the fixed variant name, or the
// user-supplied label for user-defined categories.
func (c Category) Label() string {
	if c.name != "" {
		return c.name
	}
	return c.label
}

// IsOther reports whether c is a user-defined category.
func (c Category) IsOther() bool {
	return c.name == ""
}

// MarshalJSON encodes fixed variants as bare name strings and
// user-defined categories as a single-key object.
func (c Category) MarshalJSON() ([]byte, error) {
	if c.name != "" {
		return json.Marshal(c.name)
	}
	return json.Marshal(map[string]string{"Other": c.label})
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case "Personal", "Work", "Shopping", "Health":
			c.name, c.label = name, ""
			return nil
		default:
			return fmt.Errorf("unknown category %q", name)
		}
	}

	var tagged struct {
		Other *string `json:"Other"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.Other == nil {
		return fmt.Errorf("malformed category: %s", data)
	}
	c.name, c.label = "", *tagged.Other
	return nil
}
