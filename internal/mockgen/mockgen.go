// Package mockgen turns captured network exchanges into twd.mockRequest
// declarations. Repeats of an endpoint (method + path) reuse its alias so
// the later declaration replaces the earlier one when the test runs.
package mockgen

import (
	"fmt"
	"strings"

	"github.com/BRIKEV/twd-mcp/internal/jsliteral"
	"github.com/BRIKEV/twd-mcp/internal/model"
)

// Header opens every non-empty mock block.
const Header = "// Generated mock handlers"

// Entry is the outcome for one captured exchange, in input order.
type Entry struct {
	Index  int // position in the input, 0-based
	URL    string
	Alias  string
	Method string
	Path   string
	Status int
	Body   model.Value
	Err    error // set when the exchange was skipped
}

// Skipped reports whether the exchange produced no statement.
func (e Entry) Skipped() bool { return e.Err != nil }

// Build resolves every exchange to an Entry. Exchanges with malformed URLs
// are kept as skipped entries rather than aborting the pass.
func Build(requests []model.NetworkRequest) []Entry {
	entries := make([]Entry, 0, len(requests))
	aliases := newAliasTable()

	for i, req := range requests {
		entry := Entry{Index: i, URL: req.URL}
		path, err := EndpointPath(req.URL)
		if err != nil {
			entry.Err = fmt.Errorf("skipping invalid request %q: %w", req.URL, err)
			entries = append(entries, entry)
			continue
		}
		entry.Method = strings.ToUpper(req.Method)
		entry.Path = path
		entry.Alias = aliases.lookup(entry.Method, path, i+1)
		entry.Status = req.Response.StatusOrDefault()
		entry.Body = req.Response.Body
		entries = append(entries, entry)
	}
	return entries
}

// Render writes the mock block for entries. No entries means no output;
// entries that were all skipped still produce the header.
func Render(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header)
	wrote := false
	for _, e := range entries {
		if e.Skipped() {
			continue
		}
		b.WriteString("\n")
		if wrote {
			b.WriteString("\n")
		}
		writeStatement(&b, e)
		wrote = true
	}
	return b.String()
}

// Generate returns the mock block for requests.
func Generate(requests []model.NetworkRequest) string {
	return Render(Build(requests))
}

// Skipped returns the entries that produced no statement.
func Skipped(entries []Entry) []Entry {
	var skipped []Entry
	for _, e := range entries {
		if e.Skipped() {
			skipped = append(skipped, e)
		}
	}
	return skipped
}

func writeStatement(b *strings.Builder, e Entry) {
	body := strings.ReplaceAll(jsliteral.Pretty(e.Body), "\n", "\n  ")
	fmt.Fprintf(b, "twd.mockRequest(%s, {\n", jsliteral.Quote(e.Alias))
	fmt.Fprintf(b, "  method: %s,\n", jsliteral.Quote(e.Method))
	fmt.Fprintf(b, "  url: %s,\n", jsliteral.Quote(e.Path))
	fmt.Fprintf(b, "  response: %s,\n", body)
	fmt.Fprintf(b, "  status: %d\n", e.Status)
	b.WriteString("});")
}
