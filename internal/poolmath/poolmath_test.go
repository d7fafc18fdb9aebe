package poolmath

import "testing"

func TestNewV4BoundsMaxSize(t *testing.T) {
	cases := []struct {
		name    string
		prefix  string
		length  int32
		want    int64
		wantErr bool
	}{
		{name: "/24", prefix: "10.10.0.0", length: 24, want: 256},
		{name: "/32 single address", prefix: "10.10.0.1", length: 32, want: 1},
		{name: "invalid prefix", prefix: "not-an-ip", length: 24, wantErr: true},
		{name: "length out of range", prefix: "10.10.0.0", length: 33, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewV4Bounds(tc.prefix, tc.length)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got bounds %+v", b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.MaxSize() != tc.want {
				t.Fatalf("MaxSize() = %d, want %d", b.MaxSize(), tc.want)
			}
		})
	}
}

func TestNewV6BoundsRejectsOversizedHostSpace(t *testing.T) {
	if _, err := NewV6Bounds("2001:db8::", 32); err == nil {
		t.Fatal("expected error: a /32 v6 prefix has 96 host bits, exceeding the 62-bit accounting limit")
	}
}

func TestFormatAndParseOffsetRoundTripV4(t *testing.T) {
	b, err := NewV4Bounds("10.10.0.0", 24)
	if err != nil {
		t.Fatalf("NewV4Bounds: %v", err)
	}
	addr, err := b.Format(5)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if addr != "10.10.0.5/24" {
		t.Fatalf("Format(5) = %q, want 10.10.0.5/24", addr)
	}
	offset, err := b.ParseOffset(addr)
	if err != nil {
		t.Fatalf("ParseOffset: %v", err)
	}
	if offset != 5 {
		t.Fatalf("ParseOffset(%q) = %d, want 5", addr, offset)
	}
}

func TestFormatOutOfRange(t *testing.T) {
	b, err := NewV4Bounds("10.10.0.0", 24)
	if err != nil {
		t.Fatalf("NewV4Bounds: %v", err)
	}
	if _, err := b.Format(256); err == nil {
		t.Fatal("expected out-of-range error for offset == maxSize")
	}
	if _, err := b.Format(-1); err == nil {
		t.Fatal("expected out-of-range error for negative offset")
	}
}

func TestRouteTargetFormatAndParse(t *testing.T) {
	b, err := NewRouteTargetBounds(1000, 10)
	if err != nil {
		t.Fatalf("NewRouteTargetBounds: %v", err)
	}
	addr, err := b.Format(3)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if addr != "1003" {
		t.Fatalf("Format(3) = %q, want 1003", addr)
	}
	offset, err := b.ParseOffset(addr)
	if err != nil {
		t.Fatalf("ParseOffset: %v", err)
	}
	if offset != 3 {
		t.Fatalf("ParseOffset(%q) = %d, want 3", addr, offset)
	}
}

func TestAllocateOffsetPrefersReleasedLIFO(t *testing.T) {
	alloc, err := AllocateOffset(100, 10, []int64{3, 7, 1})
	if err != nil {
		t.Fatalf("AllocateOffset: %v", err)
	}
	if alloc.Offset != 7 {
		t.Fatalf("Offset = %d, want 7 (largest released)", alloc.Offset)
	}
	if alloc.NextAvailable != 10 {
		t.Fatalf("NextAvailable = %d, want unchanged 10", alloc.NextAvailable)
	}
	wantRest := map[int64]bool{3: true, 1: true}
	if len(alloc.ReleasedNumbers) != 2 {
		t.Fatalf("ReleasedNumbers = %v, want 2 entries", alloc.ReleasedNumbers)
	}
	for _, v := range alloc.ReleasedNumbers {
		if !wantRest[v] {
			t.Fatalf("unexpected leftover released value %d", v)
		}
	}
}

func TestAllocateOffsetAdvancesNextAvailable(t *testing.T) {
	alloc, err := AllocateOffset(100, 10, nil)
	if err != nil {
		t.Fatalf("AllocateOffset: %v", err)
	}
	if alloc.Offset != 10 || alloc.NextAvailable != 11 {
		t.Fatalf("got %+v, want Offset=10 NextAvailable=11", alloc)
	}
}

func TestAllocateOffsetExhausted(t *testing.T) {
	if _, err := AllocateOffset(10, 10, nil); err == nil {
		t.Fatal("expected exhaustion error when nextAvailable == maxSize and nothing released")
	}
}

func TestReleaseOffsetAppends(t *testing.T) {
	got := ReleaseOffset([]int64{1, 2}, 3)
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("ReleaseOffset = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReleaseOffset = %v, want %v", got, want)
		}
	}
}
