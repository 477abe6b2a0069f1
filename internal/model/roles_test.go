package model

import "testing"

func TestImplicitRole_KnownTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"button", "button"},
		{"a", "link"},
		{"input", "textbox"},
		{"select", "combobox"},
		{"textarea", "textbox"},
		{"img", "img"},
		{"nav", "navigation"},
		{"main", "main"},
		{"header", "banner"},
		{"footer", "contentinfo"},
		{"article", "article"},
		{"aside", "complementary"},
		{"form", "form"},
		{"BUTTON", "button"},
		{"Nav", "navigation"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ImplicitRole(tt.input)
			if got != tt.want {
				t.Errorf("ImplicitRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestImplicitRole_NoRole(t *testing.T) {
	for _, tag := range []string{"div", "span", "section", "li", ""} {
		if got := ImplicitRole(tag); got != "" {
			t.Errorf("ImplicitRole(%q) = %q, want empty", tag, got)
		}
	}
}

func TestEffectiveRole_ExplicitWins(t *testing.T) {
	el := Element{TagName: "div", Role: "dialog"}
	if got := el.EffectiveRole(); got != "dialog" {
		t.Errorf("got %q, want dialog", got)
	}
	el = Element{TagName: "a", Role: "button"}
	if got := el.EffectiveRole(); got != "button" {
		t.Errorf("explicit role should override implicit link role, got %q", got)
	}
	el = Element{TagName: "a"}
	if got := el.EffectiveRole(); got != "link" {
		t.Errorf("got %q, want link", got)
	}
}

func TestSelectorType_Priority(t *testing.T) {
	order := []SelectorType{SelectorRole, SelectorLabel, SelectorText, SelectorPlaceholder, SelectorTestID}
	for i, st := range order {
		if got := st.Priority(); got != i+1 {
			t.Errorf("%s priority = %d, want %d", st, got, i+1)
		}
	}
	if got := SelectorType("css").Priority(); got != 0 {
		t.Errorf("unknown selector type priority = %d, want 0", got)
	}
}
