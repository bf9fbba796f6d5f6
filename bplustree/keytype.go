package bplus

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
)

// Key-type tags used in the snapshot header (spec §6).
const (
	keyTypeInt32  int32 = 0
	keyTypeString int32 = 1
)

func compare[K Ordered](a, b K) int {
	switch av := any(a).(type) {
	case int32:
		bv := any(b).(int32)
		return cmp.Compare(av, bv)
	case string:
		bv := any(b).(string)
		return cmp.Compare(av, bv)
	default:
		panic(fmt.Sprintf("bplus: unsupported key type %T", a))
	}
}

// keyTypeTag returns the on-disk tag for K, used by Serialize/Deserialize.
func keyTypeTag[K Ordered]() (int32, error) {
	var zero K
	switch any(zero).(type) {
	case int32:
		return keyTypeInt32, nil
	case string:
		return keyTypeString, nil
	default:
		return 0, fmt.Errorf("bplus: unsupported key type %T: %w", zero, ErrFormat)
	}
}

// encodeKey writes k in the wire format of spec §6: a bare int32, or a
// uint32 length prefix followed by the raw bytes for a string key.
func encodeKey[K Ordered](w io.Writer, k K) error {
	switch v := any(k).(type) {
	case int32:
		return binary.Write(w, binary.LittleEndian, v)
	case string:
		b := []byte(v)
		if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
			return err
		}
		_, err := w.Write(b)
		return err
	default:
		return fmt.Errorf("bplus: unsupported key type %T: %w", k, ErrFormat)
	}
}

// decodeKey reads a key of type K from r, in the same wire format.
func decodeKey[K Ordered](r io.Reader) (K, error) {
	var zero K
	switch any(zero).(type) {
	case int32:
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return zero, err
		}
		return any(v).(K), nil
	case string:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return zero, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return zero, err
		}
		return any(string(buf)).(K), nil
	default:
		return zero, fmt.Errorf("bplus: unsupported key type %T: %w", zero, ErrFormat)
	}
}
