package bplus

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the style of the package-level Err* values the
// teacher's own query_parser package declares. ErrKeyTypeMismatch is a
// specialization of ErrFormat per spec §7; callers that only care about the
// broad taxonomy can match on ErrFormat with errors.Is.
var (
	// ErrIO covers file open/read/write failures during Serialize or
	// Deserialize.
	ErrIO = errors.New("bplus: snapshot i/o error")

	// ErrFormat covers a truncated data file, an unknown record type byte,
	// or any other malformed snapshot content.
	ErrFormat = errors.New("bplus: snapshot format error")

	// ErrKeyTypeMismatch reports that a snapshot's key-type tag disagrees
	// with the key type the tree was instantiated with.
	ErrKeyTypeMismatch = fmt.Errorf("%w: key type does not match tree", ErrFormat)
)
