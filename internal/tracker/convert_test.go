package tracker

import (
	"testing"
	"time"
)

func TestWeekdayEncodingRoundTrip(t *testing.T) {
	in := []time.Weekday{time.Monday, time.Wednesday, time.Saturday}
	encoded := encodeWeekdays(in)
	if encoded != "1,3,6" {
		t.Fatalf("unexpected encoding: %q", encoded)
	}
	out, err := decodeWeekdays(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 3 || out[0] != time.Monday || out[2] != time.Saturday {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestDecodeWeekdaysEmptyAndInvalid(t *testing.T) {
	out, err := decodeWeekdays("")
	if err != nil || out != nil {
		t.Fatalf("empty string should decode to nil, got %#v err %v", out, err)
	}
	if _, err := decodeWeekdays("1,x"); err == nil {
		t.Fatalf("expected error for non-numeric weekday")
	}
	if _, err := decodeWeekdays("7"); err == nil {
		t.Fatalf("expected error for out-of-range weekday")
	}
}
