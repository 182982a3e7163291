// Package prompt holds the embedded prompt templates.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// System returns the session system prompt for the given restaurant name.
func System(restaurantName string) string {
	return fmt.Sprintf(strings.TrimSpace(systemRaw), restaurantName)
}
