package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a command names a category the bot
// does not recognize.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the namespace a member declares characters in. Each category
// owns a role-name suffix and a display color; a guild role belongs to a
// category iff its name ends with the category's suffix.
type Category int

const (
	// CategoryMain holds the characters a member primarily plays.
	CategoryMain Category = iota
	// CategorySecondary holds the member's secondaries.
	CategorySecondary
)

// CategoryFromName maps a command name ("main", "secondary") to its category.
func CategoryFromName(name string) (Category, error) {
	switch name {
	case "main":
		return CategoryMain, nil
	case "secondary":
		return CategorySecondary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) Name() string {
	if c == CategorySecondary {
		return "secondary"
	}
	return "main"
}

// Suffix is appended to a character name to form the category's role names.
func (c Category) Suffix() string {
	if c == CategorySecondary {
		return " secondary"
	}
	return " main"
}

// Color is the display color for roles created in this category.
// Values follow the Discord embed color table (GOLD / DARK_GOLD).
func (c Category) Color() int {
	if c == CategorySecondary {
		return 12745742
	}
	return 15844367
}

// RoleName builds the role name representing character in this category.
func (c Category) RoleName(character string) string {
	return character + c.Suffix()
}

// IsCategoryRole reports whether roleName belongs to this category.
func (c Category) IsCategoryRole(roleName string) bool {
	return strings.HasSuffix(roleName, c.Suffix())
}
