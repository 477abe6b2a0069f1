package selector

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BRIKEV/twd-mcp/internal/model"
)

func TestSuggest_NoIdentifyingAttributes(t *testing.T) {
	for _, el := range []model.Element{
		{TagName: "div"},
		{TagName: "span", Name: "only-a-name"},
		{TagName: "section", TextContent: "   \n\t "},
	} {
		got := Suggest(el)
		if got == nil {
			t.Errorf("%+v: Suggest returned nil, want empty slice", el)
		}
		if len(got) != 0 {
			t.Errorf("%+v: got %d suggestions, want 0: %+v", el, len(got), got)
		}
	}
}

func TestSuggest_BareButton(t *testing.T) {
	got := Suggest(model.Element{TagName: "button"})
	want := []model.SelectorSuggestion{
		{Selector: "screenDom.getByRole('button')", Priority: 1, Type: model.SelectorRole},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggest_AllCategories(t *testing.T) {
	el := model.Element{
		TagName:     "input",
		TextContent: "  Email  ",
		AriaLabel:   "Email address",
		Placeholder: "you@example.com",
		TestID:      "email",
	}
	want := []model.SelectorSuggestion{
		{Selector: "screenDom.getByRole('textbox', { name: /Email address/i })", Priority: 1, Type: model.SelectorRole},
		{Selector: "screenDom.getByLabelText(/Email address/i)", Priority: 2, Type: model.SelectorLabel},
		{Selector: "screenDom.getByText(/Email/i)", Priority: 3, Type: model.SelectorText},
		{Selector: `screenDom.getByPlaceholderText(/you@example\.com/i)`, Priority: 4, Type: model.SelectorPlaceholder},
		{Selector: "screenDom.getByTestId('email')", Priority: 5, Type: model.SelectorTestID},
	}
	if diff := cmp.Diff(want, Suggest(el)); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggest_RoleNameFallsBackToTrimmedText(t *testing.T) {
	got := Suggest(model.Element{TagName: "a", TextContent: "\n  Read more  \n"})
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].Selector != "screenDom.getByRole('link', { name: /Read more/i })" {
		t.Errorf("role selector = %s", got[0].Selector)
	}
	if got[1].Selector != "screenDom.getByText(/Read more/i)" {
		t.Errorf("text selector = %s", got[1].Selector)
	}
}

func TestSuggest_ExplicitRoleOverridesTag(t *testing.T) {
	got := Suggest(model.Element{TagName: "div", Role: "dialog", AriaLabel: "Confirm"})
	if got[0].Selector != "screenDom.getByRole('dialog', { name: /Confirm/i })" {
		t.Errorf("role selector = %s", got[0].Selector)
	}
}

func TestSuggest_BlankTextGivesUnnamedRole(t *testing.T) {
	got := Suggest(model.Element{TagName: "button", TextContent: "   "})
	if len(got) != 1 || got[0].Selector != "screenDom.getByRole('button')" {
		t.Errorf("got %+v", got)
	}
}

func TestSuggest_TestIDIsLiteral(t *testing.T) {
	got := Suggest(model.Element{TagName: "div", TestID: "cart.total*(v2)-with-a-rather-long-identifier"})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	want := "screenDom.getByTestId('cart.total*(v2)-with-a-rather-long-identifier')"
	if got[0].Selector != want {
		t.Errorf("selector = %s, want %s", got[0].Selector, want)
	}
}

func TestSuggest_QuoteInRoleAndTestID(t *testing.T) {
	got := Suggest(model.Element{TagName: "div", Role: "it's", TestID: "o'clock"})
	if got[0].Selector != `screenDom.getByRole('it\'s')` {
		t.Errorf("role selector = %s", got[0].Selector)
	}
	if got[1].Selector != `screenDom.getByTestId('o\'clock')` {
		t.Errorf("testid selector = %s", got[1].Selector)
	}
}

func TestSuggest_SortedAndUnique(t *testing.T) {
	elements := []model.Element{
		{TagName: "div", TestID: "x", Placeholder: "p"},
		{TagName: "nav", AriaLabel: "Main"},
		{TagName: "p", TextContent: "hello", TestID: "greeting"},
		{TagName: "textarea", Placeholder: "Say something", TextContent: "draft"},
	}
	for _, el := range elements {
		got := Suggest(el)
		seen := map[model.SelectorType]bool{}
		for i, s := range got {
			if i > 0 && got[i-1].Priority >= s.Priority {
				t.Errorf("%+v: suggestions not strictly ascending: %+v", el, got)
			}
			if seen[s.Type] {
				t.Errorf("%+v: duplicate category %s", el, s.Type)
			}
			seen[s.Type] = true
			if s.Priority != s.Type.Priority() {
				t.Errorf("%+v: %s has priority %d", el, s.Type, s.Priority)
			}
		}
	}
}

func TestSuggest_LongTextEscapedAndTruncated(t *testing.T) {
	label := "Total (incl. tax) is $1,299.99 + shipping [estimated]"
	got := Suggest(model.Element{TagName: "span", AriaLabel: label})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	sel := got[0].Selector
	prefix, suffix := "screenDom.getByLabelText(/", "/i)"
	if !strings.HasPrefix(sel, prefix) || !strings.HasSuffix(sel, suffix) {
		t.Fatalf("unexpected selector shape: %s", sel)
	}
	pattern := strings.TrimSuffix(strings.TrimPrefix(sel, prefix), suffix)
	if want := `Total \(incl\. tax\) is \$1,29`; pattern != want {
		t.Errorf("pattern = %s, want %s", pattern, want)
	}
	if n := len([]rune(pattern)); n > MaxPatternLength {
		t.Errorf("pattern length %d exceeds %d", n, MaxPatternLength)
	}
}

func TestEscapeRegex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"plain", "hello", 30, "hello"},
		{"metachars", `a.b*c+d?e^f$g{h}i(j)k|l[m]n\o`, 100, `a\.b\*c\+d\?e\^f\$g\{h\}i\(j\)k\|l\[m\]n\\o`},
		{"slash", "and/or", 30, `and\/or`},
		{"newline", "two\nlines", 30, `two\nlines`},
		{"exact limit", strings.Repeat("x", 30), 30, strings.Repeat("x", 30)},
		{"truncated", strings.Repeat("y", 40), 30, strings.Repeat("y", 30)},
		{"escape not split", strings.Repeat("z", 29) + ".", 30, strings.Repeat("z", 29)},
		{"runes counted", strings.Repeat("é", 35), 30, strings.Repeat("é", 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeRegex(tt.input, tt.max); got != tt.want {
				t.Errorf("EscapeRegex(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestBest(t *testing.T) {
	if _, ok := Best(model.Element{TagName: "div"}); ok {
		t.Error("expected no selector for bare div")
	}
	best, ok := Best(model.Element{TagName: "div", TestID: "panel", Placeholder: "Search"})
	if !ok {
		t.Fatal("expected a selector")
	}
	if best.Type != model.SelectorPlaceholder {
		t.Errorf("best type = %s, want placeholder", best.Type)
	}
}
