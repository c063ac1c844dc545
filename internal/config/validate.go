package config

import (
	"fmt"

	"github.com/averill/deckd/internal/button"
)

// Validate walks the button tree and returns advisory warnings. Warnings do
// not prevent the tree from loading; press behaviour may just surprise.
func Validate(root *button.Menu) []string {
	var warnings []string
	seen := make(map[string]int)
	walk(root, seen, &warnings)
	for name, count := range seen {
		if count > 1 {
			warnings = append(warnings,
				fmt.Sprintf("button name %q appears %d times; toggles with the same name share one state", name, count))
		}
	}
	return warnings
}

func walk(menu *button.Menu, seen map[string]int, warnings *[]string) {
	if len(menu.Buttons) == 0 {
		*warnings = append(*warnings, fmt.Sprintf("menu %q is empty", menu.Name))
	}
	for _, b := range menu.Buttons {
		switch btn := b.(type) {
		case *button.Menu:
			seen[btn.Name]++
			walk(btn, seen, warnings)
		case *button.Toggle:
			seen[btn.Name]++
			if !btn.HasProbe() {
				*warnings = append(*warnings,
					fmt.Sprintf("toggle %q has no probe command; its state starts unknown and is never verified", btn.Name))
			}
		case *button.Command:
			seen[btn.Name]++
		}
	}
}
