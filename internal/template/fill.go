package template

import (
	"strconv"
	"strings"
)

// Fill replaces every {{token}} occurrence with its variable value.
// Tokens without a variable stay in the output untouched.
func Fill(tpl string, vars map[string]string) string {
	for key, value := range vars {
		tpl = strings.ReplaceAll(tpl, "{{"+key+"}}", value)
	}
	return tpl
}

func boolStr(b bool) string {
	return strconv.FormatBool(b)
}

// cnBool renders booleans the way the sherlock note layout expects.
func cnBool(b bool) string {
	if b {
		return "是"
	}
	return "否"
}

func retiredText(retired bool) string {
	if retired {
		return "已退役"
	}
	return "活跃中"
}

// starGlyphs renders n filled stars, rounding half up.
func starGlyphs(rating float64) string {
	if rating <= 0 {
		return ""
	}
	return strings.Repeat("⭐", int(rating+0.5))
}
