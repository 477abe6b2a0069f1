package model

import "strings"

// implicitRoles maps HTML tag names to the ARIA role they carry by default.
var implicitRoles = map[string]string{
	"button":   "button",
	"a":        "link",
	"input":    "textbox",
	"select":   "combobox",
	"textarea": "textbox",
	"img":      "img",
	"nav":      "navigation",
	"main":     "main",
	"header":   "banner",
	"footer":   "contentinfo",
	"article":  "article",
	"aside":    "complementary",
	"form":     "form",
}

// ImplicitRole returns the default role for tagName (case-insensitive), or ""
// if the tag has none.
func ImplicitRole(tagName string) string {
	return implicitRoles[strings.ToLower(tagName)]
}

// EffectiveRole returns the element's explicit role, falling back to the
// implicit role of its tag.
func (e Element) EffectiveRole() string {
	if e.Role != "" {
		return e.Role
	}
	return ImplicitRole(e.TagName)
}
