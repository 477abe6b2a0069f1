// Package selector ranks testing-library queries for a DOM element
// descriptor. Accessible queries come first:
// role > label > text > placeholder > testid.
package selector

import (
	"sort"
	"strings"

	"github.com/BRIKEV/twd-mcp/internal/jsliteral"
	"github.com/BRIKEV/twd-mcp/internal/model"
)

// Suggest returns every selector that can locate el, best first. An element
// with no role and no identifying attribute yields an empty list.
func Suggest(el model.Element) []model.SelectorSuggestion {
	suggestions := make([]model.SelectorSuggestion, 0, 5)
	add := func(t model.SelectorType, selector string) {
		suggestions = append(suggestions, model.SelectorSuggestion{
			Selector: selector,
			Priority: t.Priority(),
			Type:     t,
		})
	}

	text := strings.TrimSpace(el.TextContent)

	if role := el.EffectiveRole(); role != "" {
		add(model.SelectorRole, byRole(role, el.AriaLabel, text))
	}
	if el.AriaLabel != "" {
		add(model.SelectorLabel, "screenDom.getByLabelText("+Pattern(el.AriaLabel)+")")
	}
	if text != "" {
		add(model.SelectorText, "screenDom.getByText("+Pattern(text)+")")
	}
	if el.Placeholder != "" {
		add(model.SelectorPlaceholder, "screenDom.getByPlaceholderText("+Pattern(el.Placeholder)+")")
	}
	if el.TestID != "" {
		add(model.SelectorTestID, "screenDom.getByTestId("+jsliteral.SingleQuoted(el.TestID)+")")
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})
	return suggestions
}

// Best returns the top-ranked selector for el, or false if none exists.
func Best(el model.Element) (model.SelectorSuggestion, bool) {
	suggestions := Suggest(el)
	if len(suggestions) == 0 {
		return model.SelectorSuggestion{}, false
	}
	return suggestions[0], true
}

// byRole builds a role query. The accessible name comes from the aria-label,
// falling back to the trimmed text.
func byRole(role, ariaLabel, text string) string {
	var b strings.Builder
	b.WriteString("screenDom.getByRole(")
	b.WriteString(jsliteral.SingleQuoted(role))
	switch {
	case ariaLabel != "":
		b.WriteString(", { name: " + Pattern(ariaLabel) + " }")
	case text != "":
		b.WriteString(", { name: " + Pattern(text) + " }")
	}
	b.WriteString(")")
	return b.String()
}
