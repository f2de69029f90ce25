// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import "github.com/fatih/color"

var (
	activeColor  = color.New(color.FgGreen)
	deletedColor = color.New(color.FgRed)
)

// statusLabel renders the soft-delete flag as a coloured word.
func statusLabel(isDeleted bool) string {
	if isDeleted {
		return deletedColor.Sprint("deleted")
	}
	return activeColor.Sprint("active")
}

// pick returns override when set, current otherwise.
func pick(override, current string) string {
	if override != "" {
		return override
	}
	return current
}
