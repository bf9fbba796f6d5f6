package bplus

import (
	"bytes"
	"testing"
)

// TestEncodeDecodeKeyInt32 tests the int32 wire format round-trips.
func TestEncodeDecodeKeyInt32(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeKey[int32](&buf, 42); err != nil {
		t.Fatalf("encodeKey: %v", err)
	}
	got, err := decodeKey[int32](&buf)
	if err != nil {
		t.Fatalf("decodeKey: %v", err)
	}
	if got != 42 {
		t.Errorf("decodeKey = %d, want 42", got)
	}
}

// TestEncodeDecodeKeyString tests the length-prefixed string wire format.
func TestEncodeDecodeKeyString(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeKey[string](&buf, "hello world"); err != nil {
		t.Fatalf("encodeKey: %v", err)
	}
	got, err := decodeKey[string](&buf)
	if err != nil {
		t.Fatalf("decodeKey: %v", err)
	}
	if got != "hello world" {
		t.Errorf("decodeKey = %q, want %q", got, "hello world")
	}
}

// TestEncodeDecodeKeyEmptyString tests the zero-length case.
func TestEncodeDecodeKeyEmptyString(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeKey[string](&buf, ""); err != nil {
		t.Fatalf("encodeKey: %v", err)
	}
	got, err := decodeKey[string](&buf)
	if err != nil {
		t.Fatalf("decodeKey: %v", err)
	}
	if got != "" {
		t.Errorf("decodeKey = %q, want empty string", got)
	}
}

// TestKeyTypeTag tests the on-disk tag assigned to each supported key type.
func TestKeyTypeTag(t *testing.T) {
	tag, err := keyTypeTag[int32]()
	if err != nil {
		t.Fatalf("keyTypeTag[int32]: %v", err)
	}
	if tag != keyTypeInt32 {
		t.Errorf("keyTypeTag[int32] = %d, want %d", tag, keyTypeInt32)
	}

	tag, err = keyTypeTag[string]()
	if err != nil {
		t.Fatalf("keyTypeTag[string]: %v", err)
	}
	if tag != keyTypeString {
		t.Errorf("keyTypeTag[string] = %d, want %d", tag, keyTypeString)
	}
}

// TestCompare tests ordering for both supported key types.
func TestCompare(t *testing.T) {
	if compare[int32](1, 2) >= 0 {
		t.Errorf("compare(1, 2) should be negative")
	}
	if compare[string]("a", "b") >= 0 {
		t.Errorf("compare(a, b) should be negative")
	}
	if compare[int32](5, 5) != 0 {
		t.Errorf("compare(5, 5) should be zero")
	}
}
