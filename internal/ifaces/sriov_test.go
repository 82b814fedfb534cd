package ifaces

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// vfInfoEntry builds one nested IFLA_VF_INFO > IFLA_VF_MAC record. The real
// kernel attribute carries a fixed 32-byte MAC buffer; only the first 6
// bytes matter for decoding so the test value is trimmed to id+6 bytes.
func vfInfoEntry(id uint32, mac []byte) []byte {
	v := make([]byte, 4+6)
	v[0] = byte(id)
	v[1] = byte(id >> 8)
	v[2] = byte(id >> 16)
	v[3] = byte(id >> 24)
	copy(v[4:], mac)
	macEntry := nlattr.Encode(ifla_vf_mac, v)

	entry := nlattr.EncodeNested(ifla_vf_info, macEntry)
	return entry
}

func TestParseSriovResolvesVFInterfaceNameFromSysfs(t *testing.T) {
	root := t.TempDir()
	netDir := filepath.Join(root, "eth0", "device", "virtfn0", "net")
	if err := os.MkdirAll(netDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(netDir, "eth0v0"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	vfList := vfInfoEntry(0, []byte{0x02, 0xaa, 0xbb, 0xcc, 0xdd, 0xee})
	top := nlattr.EncodeNested(ifla_vfinfo_list, vfList)

	s := ParseSriov(nlattr.Iterate(top), "eth0", root)
	if s == nil {
		t.Fatal("ParseSriov returned nil, want one VF")
	}
	if s.TotalVFs != 1 {
		t.Fatalf("TotalVFs = %d, want 1", s.TotalVFs)
	}
	if s.VFs[0].MAC != "02:aa:bb:cc:dd:ee" {
		t.Errorf("MAC = %q, want 02:aa:bb:cc:dd:ee", s.VFs[0].MAC)
	}
	if s.VFs[0].IfaceName != "eth0v0" {
		t.Errorf("IfaceName = %q, want eth0v0 (resolved from sysfs)", s.VFs[0].IfaceName)
	}
}

func TestParseSriovReturnsNilWhenNoVFInfo(t *testing.T) {
	t.Parallel()

	if s := ParseSriov(nil, "eth0", t.TempDir()); s != nil {
		t.Fatalf("ParseSriov = %+v, want nil for absent IFLA_VFINFO_LIST", s)
	}
}

func TestParseSriovLeavesIfaceNameEmptyWhenSysfsMissing(t *testing.T) {
	t.Parallel()

	vfList := vfInfoEntry(0, []byte{0x02, 0xaa, 0xbb, 0xcc, 0xdd, 0xee})
	top := nlattr.EncodeNested(ifla_vfinfo_list, vfList)

	s := ParseSriov(nlattr.Iterate(top), "eth0", t.TempDir())
	if s == nil {
		t.Fatal("ParseSriov returned nil")
	}
	if s.VFs[0].IfaceName != "" {
		t.Errorf("IfaceName = %q, want empty when sysfs has no virtfn dir", s.VFs[0].IfaceName)
	}
}
