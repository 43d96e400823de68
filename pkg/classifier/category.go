package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the fixed news topics. The set is closed: the declaration
// order below drives vocabulary precedence and ranking tie-breaks, so new
// categories must never be appended at runtime.
type Category int

const (
	Technology Category = iota
	Business
	Politics
	Sports
	Entertainment
	Health
	Science

	// NumCategories is the size of the closed category set.
	NumCategories = int(Science) + 1
)

var categoryNames = [NumCategories]string{
	Technology:    "Technology",
	Business:      "Business",
	Politics:      "Politics",
	Sports:        "Sports",
	Entertainment: "Entertainment",
	Health:        "Health",
	Science:       "Science",
}

// AllCategories returns the categories in declaration order.
func AllCategories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a category name (case-insensitive) back to its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
