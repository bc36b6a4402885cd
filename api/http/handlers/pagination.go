package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseLimit reads ?limit=. Missing, malformed or non-positive values yield 0,
// which lets the use case apply its default; the upper cap is applied there too.
func parseLimit(c *fiber.Ctx) int {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
