package clusterid

import "testing"

const (
	sample = "0123456789abcdef0123456789ABCDEF"
	want   = "0123456789abcdef0123456789abcdef"
)

func TestFromHostname(t *testing.T) {
	tests := []struct {
		host string
		ok   bool
	}{
		{sample + ".renderer.freelens.app", true},
		{sample + ".renderer.freelens.app:443", true},
		{sample + ".renderer.freelens.app.", true},
		{"renderer.freelens.app", false},
		{"abc.renderer.freelens.app", false},
		{sample + ".example.com", false},
	}
	for _, tt := range tests {
		got, ok := FromHostname(tt.host)
		if ok != tt.ok {
			t.Fatalf("FromHostname(%q) ok = %v, want %v", tt.host, ok, tt.ok)
		}
		if ok && got != want {
			t.Fatalf("FromHostname(%q) = %q, want %q", tt.host, got, want)
		}
	}
}

func TestFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"subdomain", "https://" + sample + ".renderer.freelens.app/workloads/pods?x=1", want, true},
		{"subdomain wins over path", "https://" + sample + ".renderer.freelens.app/cluster/other", want, true},
		{"path", "http://localhost:9000/cluster/abc123/workloads", "abc123", true},
		{"path wins over query", "http://localhost/cluster/abc123?cluster=zzz", "abc123", true},
		{"hash route", "http://localhost/index.html#/cluster/abc123", "abc123", true},
		{"hash route without slash", "http://localhost/#cluster/abc123/pods", "abc123", true},
		{"query", "http://localhost/view?tab=1&cluster=abc123", "abc123", true},
		{"path only", "/cluster/kind-dev", "kind-dev", true},
		{"no cluster", "http://localhost/workloads/pods", "", false},
		{"plain text", "not a url", "", false},
		{"empty query", "http://localhost/?cluster=", "", false},
	}
	for _, tt := range tests {
		got, ok := FromURL(tt.url)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: FromURL(%q) = %q, %v; want %q, %v", tt.name, tt.url, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromElementID(t *testing.T) {
	got, ok := FromElementID("cluster-" + sample)
	if !ok || got != want {
		t.Fatalf("FromElementID = %q, %v; want %q, true", got, ok, want)
	}
	if _, ok := FromElementID("cluster-short"); ok {
		t.Fatal("FromElementID accepted a short id")
	}
}

func TestDetect_Order(t *testing.T) {
	tests := []struct {
		name string
		src  Sources
		want string
		ok   bool
	}{
		{"url first", Sources{URL: "http://localhost/cluster/abc", ElementIDs: []string{"cluster-" + sample}}, "abc", true},
		{"element after url", Sources{URL: "http://localhost/", ElementIDs: []string{"sidebar", "cluster-" + sample}, DataClusterIDs: []string{"dev"}}, want, true},
		{"data attribute last", Sources{URL: "http://localhost/", ElementIDs: []string{"cluster-short"}, DataClusterIDs: []string{" ", "dev"}}, "dev", true},
		{"nothing", Sources{ElementIDs: []string{"sidebar"}}, "", false},
	}
	for _, tt := range tests {
		got, ok := Detect(tt.src)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: Detect = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{sample, want},
		{"cluster-" + sample, want},
		{sample + ".renderer.freelens.app", want},
		{"https://" + sample + ".renderer.freelens.app/", want},
		{"http://localhost/#/cluster/kind-dev", "kind-dev"},
		{"  kind-dev  ", "kind-dev"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
