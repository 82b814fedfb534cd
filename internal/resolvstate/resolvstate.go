// Package resolvstate reads the system's current DNS configuration. It
// mirrors the read side of what the teacher's resolvectl/resolv.conf writer
// does for the write side: prefer systemd-resolved's own view when present
// (so per-link and DNSSEC-validated overrides are reflected), falling back
// to /etc/resolv.conf parsing otherwise.
package resolvstate

import (
	"bufio"
	"os"
	"os/exec"
	"strings"
)

// State is the merged, global view of nameservers and search domains;
// rtnetlink has no notion of DNS, so this is always read out-of-band.
type State struct {
	Servers []string
	Search  []string
}

// Read returns the current DNS state, trying resolvectl first and falling
// back to parsing /etc/resolv.conf directly.
func Read() (State, error) {
	if _, err := exec.LookPath("resolvectl"); err == nil {
		if st, err := readResolvectl(); err == nil {
			return st, nil
		}
	}
	return readResolvConf("/etc/resolv.conf")
}

func readResolvectl() (State, error) {
	out, err := exec.Command("resolvectl", "status", "--no-pager").Output()
	if err != nil {
		return State{}, err
	}
	var st State
	seen := map[string]bool{}
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "DNS Servers:"):
			addAll(&st.Servers, seen, strings.Fields(strings.TrimPrefix(line, "DNS Servers:")))
		case strings.HasPrefix(line, "DNS Domain:"):
			addAll(&st.Search, seen, strings.Fields(strings.TrimPrefix(line, "DNS Domain:")))
		}
	}
	return st, nil
}

func addAll(dst *[]string, seen map[string]bool, vals []string) {
	for _, v := range vals {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		*dst = append(*dst, v)
	}
}

func readResolvConf(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, err
	}
	defer f.Close()

	var st State
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "nameserver":
			st.Servers = append(st.Servers, fields[1])
		case "search", "domain":
			st.Search = append(st.Search, fields[1:]...)
		}
	}
	return st, scanner.Err()
}
