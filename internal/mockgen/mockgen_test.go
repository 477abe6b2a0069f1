package mockgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BRIKEV/twd-mcp/internal/model"
)

func req(method, url string, body model.Value) model.NetworkRequest {
	return model.NetworkRequest{URL: url, Method: method, Response: model.Response{Body: body}}
}

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(nil); got != "" {
		t.Errorf("Generate(nil) = %q, want empty", got)
	}
	if got := Generate([]model.NetworkRequest{}); got != "" {
		t.Errorf("Generate([]) = %q, want empty", got)
	}
}

func TestGenerate_SingleRequest(t *testing.T) {
	body := model.Object(
		model.Member{Key: "id", Value: model.Int(7)},
		model.Member{Key: "roles", Value: model.Array(model.String("admin"))},
	)
	got := Generate([]model.NetworkRequest{req("get", "https://api.example.com/api/users/7?expand=1", body)})
	want := `// Generated mock handlers
twd.mockRequest("ApiUsers7", {
  method: "GET",
  url: "/api/users/7",
  response: {
    "id": 7,
    "roles": [
      "admin"
    ]
  },
  status: 200
});`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_SamePathDifferentQueryShareAlias(t *testing.T) {
	got := Generate([]model.NetworkRequest{
		req("GET", "https://x/a?x=1", model.Int(1)),
		req("GET", "https://x/a?y=2", model.Int(2)),
	})
	want := `// Generated mock handlers
twd.mockRequest("A", {
  method: "GET",
  url: "/a",
  response: 1,
  status: 200
});

twd.mockRequest("A", {
  method: "GET",
  url: "/a",
  response: 2,
  status: 200
});`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_MethodIsCaseInsensitive(t *testing.T) {
	entries := Build([]model.NetworkRequest{
		req("get", "https://x/items", model.Null()),
		req("GET", "https://y/items", model.Null()),
	})
	if entries[0].Alias != entries[1].Alias {
		t.Errorf("aliases differ: %q vs %q", entries[0].Alias, entries[1].Alias)
	}
}

func TestGenerate_SkipsMalformedURLs(t *testing.T) {
	requests := []model.NetworkRequest{
		req("GET", "https://x/first", model.Int(1)),
		req("GET", "", model.Int(2)),
		req("GET", "https://x/third", model.Int(3)),
	}
	entries := Build(requests)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	skipped := Skipped(entries)
	if len(skipped) != 1 || skipped[0].Index != 1 {
		t.Fatalf("skipped = %+v, want the entry at index 1", skipped)
	}
	if skipped[0].Err == nil || !strings.Contains(skipped[0].Err.Error(), "skipping invalid request") {
		t.Errorf("skip error = %v", skipped[0].Err)
	}

	out := Render(entries)
	if n := strings.Count(out, "twd.mockRequest("); n != 2 {
		t.Errorf("statements = %d, want 2:\n%s", n, out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("output should not end with a blank separator")
	}
	if !strings.Contains(out, `"First"`) || !strings.Contains(out, `"Third"`) {
		t.Errorf("missing aliases:\n%s", out)
	}
}

func TestGenerate_AllMalformedKeepsHeader(t *testing.T) {
	got := Generate([]model.NetworkRequest{
		req("GET", "not a url", model.Null()),
		req("GET", "/relative/path", model.Null()),
	})
	if got != Header {
		t.Errorf("got %q, want header only", got)
	}
}

func TestGenerate_Status(t *testing.T) {
	r := req("POST", "https://x/login", model.Object())
	r.Response.Status = 401
	got := Generate([]model.NetworkRequest{r})
	if !strings.Contains(got, "  status: 401\n") {
		t.Errorf("missing explicit status:\n%s", got)
	}
	if !strings.Contains(got, "  response: {},\n") {
		t.Errorf("empty object body not rendered inline:\n%s", got)
	}
}

func TestBuild_FallbackAlias(t *testing.T) {
	entries := Build([]model.NetworkRequest{
		req("GET", "https://x/items", model.Null()),
		req("GET", "https://x/", model.Null()),
		req("GET", "https://x", model.Null()),
	})
	if entries[1].Alias != "request2" {
		t.Errorf("alias = %q, want request2", entries[1].Alias)
	}
	if entries[2].Alias != "request2" {
		t.Errorf("bare host shares the / endpoint, alias = %q, want request2", entries[2].Alias)
	}
	if entries[2].Path != "/" {
		t.Errorf("path = %q, want /", entries[2].Path)
	}
}

func TestBuild_DistinctEndpointsNeverShareAlias(t *testing.T) {
	entries := Build([]model.NetworkRequest{
		req("GET", "https://x/api/users", model.Null()),
		req("POST", "https://x/api/users", model.Null()),
		req("GET", "https://x/api/us-ers", model.Null()),
		req("POST", "https://x/api/users", model.Null()),
	})
	got := []string{entries[0].Alias, entries[1].Alias, entries[2].Alias, entries[3].Alias}
	want := []string{"ApiUsers", "ApiUsers2", "ApiUsers3", "ApiUsers2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/users/42", "ApiUsers42"},
		{"/v1/order-items", "V1Orderitems"},
		{"/api/users.json", "ApiUsersjson"},
		{"/-private/x", "-privateX"},
		{"/a//b/", "AB"},
		{"/very/long/path/segments/that/overflow", "VeryLongPathSegments"},
		{"/", "request3"},
		{"", "request3"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DeriveAlias(tt.path, 3); got != tt.want {
				t.Errorf("DeriveAlias(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEndpointPath(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://x/a?q=1#frag", "/a", false},
		{"http://localhost:3000/api/v1/", "/api/v1/", false},
		{"https://x/a/../b", "/b", false},
		{"https://x/with space", "/with%20space", false},
		{"https://x", "/", false},
		{"", "", true},
		{"/relative", "", true},
		{"https://", "", true},
		{"http://[::1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := EndpointPath(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("EndpointPath(%q) = %q, want error", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("EndpointPath(%q): %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("EndpointPath(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
