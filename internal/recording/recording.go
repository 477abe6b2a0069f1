// Package recording assembles a complete TWD test file from recorded
// browser interactions and the network traffic they triggered.
package recording

import (
	"fmt"
	"strings"

	"github.com/BRIKEV/twd-mcp/internal/jsliteral"
	"github.com/BRIKEV/twd-mcp/internal/mockgen"
	"github.com/BRIKEV/twd-mcp/internal/model"
	"github.com/BRIKEV/twd-mcp/internal/selector"
)

// DefaultTestName names the suite when the recording carries no name.
const DefaultTestName = "recorded user flow"

const (
	suiteIndent = "  "
	bodyIndent  = "    "
)

// Result is a generated test plus what had to be left out of it.
type Result struct {
	Source string
	// Mocks holds one entry per network call, including skipped ones.
	Mocks []mockgen.Entry
	// Unselectable lists the indices of click/type interactions whose
	// target had no selector; each became a TODO comment.
	Unselectable []int
}

// Generate returns the test source for rec.
func Generate(rec model.Recording) string {
	return Assemble(rec).Source
}

// Assemble builds the test source for rec. Mocks are declared before any
// interaction so they are registered before the requests fire.
func Assemble(rec model.Recording) Result {
	name := rec.TestName
	if name == "" {
		name = DefaultTestName
	}

	var res Result
	lines := []string{
		`import { twd, userEvent, screenDom } from "twd-js";`,
		`import { describe, it, beforeEach } from "twd-js/runner";`,
		"",
		fmt.Sprintf("describe(%s, () => {", jsliteral.Quote(name)),
		suiteIndent + "beforeEach(() => {",
		bodyIndent + "// Clear mocks before each test",
		bodyIndent + "twd.clearRequestMockRules();",
		suiteIndent + "});",
		"",
		suiteIndent + `it("should complete the recorded flow", async () => {`,
	}

	if len(rec.NetworkCalls) > 0 {
		res.Mocks = mockgen.Build(rec.NetworkCalls)
		lines = append(lines, bodyIndent+"// Define mocks before interactions")
		lines = append(lines, indent(mockgen.Render(res.Mocks), bodyIndent)...)
		lines = append(lines, "")
	}

	for i, in := range rec.Interactions {
		stmts, ok := statements(in)
		if !ok {
			res.Unselectable = append(res.Unselectable, i)
		}
		for _, s := range stmts {
			lines = append(lines, bodyIndent+s)
		}
	}

	lines = append(lines,
		"",
		bodyIndent+"// TODO: Add assertions",
		bodyIndent+`// const message = await twd.get(".message");`,
		bodyIndent+`// message.should("be.visible");`,
		suiteIndent+"});",
		"});",
	)

	res.Source = strings.Join(lines, "\n")
	return res
}

// statements translates one interaction. ok is false when the target of a
// click or type could not be selected.
func statements(in model.Interaction) (stmts []string, ok bool) {
	switch in.Type {
	case model.Navigate:
		if in.URL == "" {
			return nil, true
		}
		return []string{
			"// Navigate to: " + jsliteral.Comment(in.URL),
			"// Note: Navigation may need to be handled in test setup",
		}, true
	case model.Click, model.TypeText:
	default:
		return nil, true
	}

	best, found := selector.Best(in.Target)
	if !found {
		return []string{fmt.Sprintf("// TODO: Could not generate selector for %s on %s",
			in.Type, jsliteral.Comment(in.Target.TagName))}, false
	}

	if in.Type == model.Click {
		return []string{fmt.Sprintf("await userEvent.click(%s);", best.Selector)}, true
	}
	if in.Value == "" {
		return nil, true
	}
	return []string{fmt.Sprintf("await userEvent.type(%s, %s);", best.Selector, jsliteral.SingleQuoted(in.Value))}, true
}

// indent prefixes every non-blank line of block.
func indent(block, prefix string) []string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return lines
}
