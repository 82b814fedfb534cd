package resolvstate

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadResolvConfParsesServersAndSearch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	content := "nameserver 8.8.8.8\nnameserver 1.1.1.1\nsearch example.com corp.internal\n# comment\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := readResolvConf(path)
	if err != nil {
		t.Fatal(err)
	}
	wantServers := []string{"8.8.8.8", "1.1.1.1"}
	if !reflect.DeepEqual(st.Servers, wantServers) {
		t.Errorf("Servers = %v, want %v", st.Servers, wantServers)
	}
	wantSearch := []string{"example.com", "corp.internal"}
	if !reflect.DeepEqual(st.Search, wantSearch) {
		t.Errorf("Search = %v, want %v", st.Search, wantSearch)
	}
}

func TestReadResolvConfTreatsDomainAsSearch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	if err := os.WriteFile(path, []byte("domain example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := readResolvConf(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Search) != 1 || st.Search[0] != "example.com" {
		t.Errorf("Search = %v, want [example.com]", st.Search)
	}
}

func TestReadResolvConfMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := readResolvConf("/nonexistent/path/resolv.conf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAddAllDedupesAndSkipsEmpty(t *testing.T) {
	t.Parallel()

	var dst []string
	seen := map[string]bool{}
	addAll(&dst, seen, []string{"a", "", "b", "a"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}
