package mockgen

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxAliasLength = 20

// EndpointPath returns the escaped path of an absolute URL, with dot
// segments resolved. Host, query and fragment are dropped.
func EndpointPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("%q is not an absolute URL", rawURL)
	}
	if u.Opaque != "" {
		return u.Opaque, nil
	}
	if u.Host == "" && u.Scheme != "file" {
		return "", fmt.Errorf("%q has no host", rawURL)
	}
	p := u.ResolveReference(&url.URL{}).EscapedPath()
	if p == "" {
		p = "/"
	}
	return p, nil
}

// DeriveAlias builds a mock alias from a URL path: each non-empty segment
// gets an upper-cased first character and loses every other
// non-alphanumeric character. The result is capped at 20 characters.
// A path with no usable segment falls back to request<position>.
func DeriveAlias(path string, position int) string {
	var b strings.Builder
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(first))
		for _, r := range seg[size:] {
			if isASCIIAlnum(r) {
				b.WriteRune(r)
			}
		}
	}
	alias := truncate(b.String(), maxAliasLength)
	if alias == "" {
		return "request" + strconv.Itoa(position)
	}
	return alias
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func truncate(s string, max int) string {
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// aliasTable assigns aliases to endpoints for one generation pass.
type aliasTable struct {
	byEndpoint map[string]string
	taken      map[string]bool
}

func newAliasTable() *aliasTable {
	return &aliasTable{
		byEndpoint: make(map[string]string),
		taken:      make(map[string]bool),
	}
}

// lookup returns the alias for method+path, assigning one on first sight.
// Distinct endpoints whose derived aliases collide get a numeric suffix.
func (t *aliasTable) lookup(method, path string, position int) string {
	key := method + ":" + path
	if alias, ok := t.byEndpoint[key]; ok {
		return alias
	}
	base := DeriveAlias(path, position)
	alias := base
	for n := 2; t.taken[alias]; n++ {
		alias = base + strconv.Itoa(n)
	}
	t.byEndpoint[key] = alias
	t.taken[alias] = true
	return alias
}
