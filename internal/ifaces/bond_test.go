package ifaces

import (
	"testing"

	"github.com/kuuji/netmirror/internal/nlattr"
)

func TestParseBondActiveBackupGatesFields(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_MODE, 1)...) // active-backup
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_FAIL_OVER_MAC, 1)...)
	payload = append(payload, nlattr.EncodeU32(IFLA_BOND_NUM_PEER_NOTIF, 3)...)
	// xmit hash policy only applies to balance-xor/802.3ad/balance-tlb; present here should be ignored.
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_XMIT_HASH_POLICY, 2)...)

	b := ParseBond(nlattr.Iterate(payload), map[int]string{})

	if b.Mode != "active-backup" {
		t.Fatalf("Mode = %q, want active-backup", b.Mode)
	}
	if b.FailOverMac == nil || *b.FailOverMac != "active" {
		t.Errorf("FailOverMac = %v, want active", b.FailOverMac)
	}
	if b.NumUnsolNA == nil || *b.NumUnsolNA != 3 {
		t.Errorf("NumUnsolNA = %v, want 3", b.NumUnsolNA)
	}
	if b.XmitHashPolicy != nil {
		t.Errorf("XmitHashPolicy = %v, want nil (not valid for active-backup)", b.XmitHashPolicy)
	}
}

func TestParseBond8023adGatesFields(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_MODE, 4)...) // 802.3ad
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_XMIT_HASH_POLICY, 1)...)
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_AD_LACP_RATE, 1)...)
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_AD_LACP_ACTIVE, 1)...)

	b := ParseBond(nlattr.Iterate(payload), map[int]string{})

	if b.Mode != "802.3ad" {
		t.Fatalf("Mode = %q, want 802.3ad", b.Mode)
	}
	if b.XmitHashPolicy == nil || *b.XmitHashPolicy != "layer3+4" {
		t.Errorf("XmitHashPolicy = %v, want layer3+4", b.XmitHashPolicy)
	}
	if b.LacpRate == nil || *b.LacpRate != "fast" {
		t.Errorf("LacpRate = %v, want fast", b.LacpRate)
	}
	if b.LacpActive == nil || !*b.LacpActive {
		t.Errorf("LacpActive = %v, want true", b.LacpActive)
	}
	if b.FailOverMac != nil {
		t.Errorf("FailOverMac = %v, want nil (not valid for 802.3ad)", b.FailOverMac)
	}
}

func TestParseBondPrimaryGatedToActiveBackupFamily(t *testing.T) {
	t.Parallel()

	byIndex := map[int]string{2: "eth1"}

	var abPayload []byte
	abPayload = append(abPayload, nlattr.EncodeU8(IFLA_BOND_MODE, 1)...) // active-backup
	abPayload = append(abPayload, nlattr.EncodeU32(IFLA_BOND_PRIMARY, 2)...)
	abPayload = append(abPayload, nlattr.EncodeU32(IFLA_BOND_ACTIVE_SLAVE, 2)...)
	abPayload = append(abPayload, nlattr.EncodeU8(IFLA_BOND_PRIMARY_RESELECT, 1)...)

	b := ParseBond(nlattr.Iterate(abPayload), byIndex)
	if b.Primary == nil || *b.Primary != "eth1" {
		t.Errorf("Primary = %v, want eth1 for active-backup", b.Primary)
	}
	if b.ActiveSubordinate == nil || *b.ActiveSubordinate != "eth1" {
		t.Errorf("ActiveSubordinate = %v, want eth1 for active-backup", b.ActiveSubordinate)
	}
	if b.PrimaryReselect == nil || *b.PrimaryReselect != "better" {
		t.Errorf("PrimaryReselect = %v, want better for active-backup", b.PrimaryReselect)
	}

	var xorPayload []byte
	xorPayload = append(xorPayload, nlattr.EncodeU8(IFLA_BOND_MODE, 2)...) // balance-xor
	xorPayload = append(xorPayload, nlattr.EncodeU32(IFLA_BOND_PRIMARY, 2)...)
	xorPayload = append(xorPayload, nlattr.EncodeU32(IFLA_BOND_ACTIVE_SLAVE, 2)...)
	xorPayload = append(xorPayload, nlattr.EncodeU8(IFLA_BOND_PRIMARY_RESELECT, 1)...)

	b2 := ParseBond(nlattr.Iterate(xorPayload), byIndex)
	if b2.Primary != nil {
		t.Errorf("Primary = %v, want nil for balance-xor (not in the gated mode set)", b2.Primary)
	}
	if b2.ActiveSubordinate != nil {
		t.Errorf("ActiveSubordinate = %v, want nil for balance-xor", b2.ActiveSubordinate)
	}
	if b2.PrimaryReselect != nil {
		t.Errorf("PrimaryReselect = %v, want nil for balance-xor", b2.PrimaryReselect)
	}
}

func TestParseBondXmitHashPolicyIncludesBalanceTlb(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_MODE, 5)...) // balance-tlb
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_XMIT_HASH_POLICY, 1)...)

	b := ParseBond(nlattr.Iterate(payload), map[int]string{})
	if b.XmitHashPolicy == nil || *b.XmitHashPolicy != "layer3+4" {
		t.Errorf("XmitHashPolicy = %v, want layer3+4 for balance-tlb", b.XmitHashPolicy)
	}
}

func TestParseBondResendIgmpIncludesBalanceRR(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_MODE, 0)...) // balance-rr
	payload = append(payload, nlattr.EncodeU32(IFLA_BOND_RESEND_IGMP, 7)...)

	b := ParseBond(nlattr.Iterate(payload), map[int]string{})
	if b.ResendIgmp == nil || *b.ResendIgmp != 7 {
		t.Errorf("ResendIgmp = %v, want 7 for balance-rr", b.ResendIgmp)
	}
}

func TestParseBondUnknownArpValidateFallsBackToSentinel(t *testing.T) {
	t.Parallel()

	payload := nlattr.EncodeU32(IFLA_BOND_ARP_VALIDATE, 99)
	b := ParseBond(nlattr.Iterate(payload), map[int]string{})

	if b.ArpValidate == nil || *b.ArpValidate != "unknown" {
		t.Errorf("ArpValidate = %v, want unknown", b.ArpValidate)
	}
}

func TestParseBondSubordinateActiveState(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_SLAVE_STATE, 0)...)
	payload = append(payload, nlattr.EncodeU8(IFLA_BOND_SLAVE_MII_STATUS, 0)...)
	payload = append(payload, nlattr.EncodeU32(IFLA_BOND_SLAVE_LINK_FAILURE_COUNT, 5)...)

	s := ParseBondSubordinate(nlattr.Iterate(payload))

	if s.SubordinateState != "active" {
		t.Errorf("SubordinateState = %q, want active", s.SubordinateState)
	}
	if s.MiiStatus != "link_up" {
		t.Errorf("MiiStatus = %q, want link_up", s.MiiStatus)
	}
	if s.LinkFailureCount != 5 {
		t.Errorf("LinkFailureCount = %d, want 5", s.LinkFailureCount)
	}
}

func TestParseBondSubordinateDefaultsToBackupWhenAbsent(t *testing.T) {
	t.Parallel()

	s := ParseBondSubordinate(nil)
	if s.SubordinateState != "backup" {
		t.Errorf("SubordinateState = %q, want default backup", s.SubordinateState)
	}
	if s.MiiStatus != "unknown" {
		t.Errorf("MiiStatus = %q, want default unknown", s.MiiStatus)
	}
}
