package nlattr

import (
	"encoding/binary"
	"testing"
)

func encodeAttr(typ uint16, value []byte) []byte {
	length := hdrLen + len(value)
	padded := align4(length)
	buf := make([]byte, padded)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(length))
	binary.LittleEndian.PutUint16(buf[2:4], typ)
	copy(buf[hdrLen:], value)
	return buf
}

func TestIterateBasic(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, encodeAttr(1, []byte{0xaa})...)
	payload = append(payload, encodeAttr(2, []byte{1, 2, 3, 4})...)

	attrs := Iterate(payload)
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	if attrs[0].Type != 1 || attrs[0].Value[0] != 0xaa {
		t.Errorf("attr 0 = %+v", attrs[0])
	}
	if attrs[1].Type != 2 || len(attrs[1].Value) != 4 {
		t.Errorf("attr 1 = %+v", attrs[1])
	}
}

func TestIterateTruncatedTail(t *testing.T) {
	t.Parallel()

	payload := encodeAttr(1, []byte{1, 2, 3, 4})
	payload = append(payload, 0, 1, 2) // 3 trailing bytes, shorter than hdrLen

	attrs := Iterate(payload)
	if len(attrs) != 1 {
		t.Fatalf("got %d attrs, want 1 (trailing short fragment dropped)", len(attrs))
	}
}

func TestIterateStripsFlags(t *testing.T) {
	t.Parallel()

	payload := encodeAttr(nestedFlag|5, []byte{1, 2, 3, 4})
	attrs := Iterate(payload)
	if len(attrs) != 1 || attrs[0].Type != 5 {
		t.Fatalf("NLA_F_NESTED flag not stripped: %+v", attrs)
	}
}

func TestNested(t *testing.T) {
	t.Parallel()

	inner := encodeAttr(9, []byte{7})
	outer := encodeAttr(1|nestedFlag, inner)

	attrs := Iterate(outer)
	if len(attrs) != 1 {
		t.Fatalf("got %d outer attrs, want 1", len(attrs))
	}
	children := Nested(attrs[0])
	if len(children) != 1 || children[0].Type != 9 || children[0].Value[0] != 7 {
		t.Fatalf("nested decode mismatch: %+v", children)
	}
}

func TestU32Short(t *testing.T) {
	t.Parallel()

	if _, err := U32([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error decoding short uint32")
	}
}

func TestU16BEVsU16(t *testing.T) {
	t.Parallel()

	b := []byte{0x01, 0x02}
	le, _ := U16(b)
	be, _ := U16BE(b)
	if le == be {
		t.Fatalf("expected different LE/BE interpretations for %v", b)
	}
	if be != 0x0102 {
		t.Errorf("U16BE = %#x, want 0x0102", be)
	}
	if le != 0x0201 {
		t.Errorf("U16 = %#x, want 0x0201", le)
	}
}

func TestMACFormatting(t *testing.T) {
	t.Parallel()

	mac, err := MAC([]byte{0x02, 0xde, 0xad, 0xbe, 0xef, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if mac != "02:de:ad:be:ef:01" {
		t.Errorf("MAC = %q", mac)
	}
}

func TestCStringStopsAtNUL(t *testing.T) {
	t.Parallel()

	s := CString([]byte("eth0\x00garbage"))
	if s != "eth0" {
		t.Errorf("CString = %q, want %q", s, "eth0")
	}
}

func TestIPv4Short(t *testing.T) {
	t.Parallel()
	if _, err := IPv4([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short IPv4")
	}
}

func TestMapFirstWins(t *testing.T) {
	t.Parallel()
	attrs := []Attr{{Type: 1, Value: []byte{1}}, {Type: 1, Value: []byte{2}}}
	m := Map(attrs)
	if m[1].Value[0] != 1 {
		t.Errorf("Map should keep first occurrence, got %v", m[1].Value)
	}
}

func TestAllReturnsEveryMatch(t *testing.T) {
	t.Parallel()
	attrs := []Attr{{Type: 1, Value: []byte{1}}, {Type: 2, Value: []byte{9}}, {Type: 1, Value: []byte{2}}}
	got := All(attrs, 1)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
}
