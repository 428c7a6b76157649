// Read-key identity: the (query name, read number) pair that uniquely
// identifies a sequencing read, or one mate of a read pair.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ReadNo tags a read as the first or second mate of a paired-end
// fragment, or as unpaired. The integer encoding is fixed and appears
// as-is in the canonical key rendering.
type ReadNo int

const (
	Unpaired   ReadNo = iota // 0: unpaired or unknown
	FirstMate                // 1: first mate of a pair
	SecondMate               // 2: second mate of a pair
)

func (n ReadNo) valid() bool {
	return n >= Unpaired && n <= SecondMate
}

// String returns the single-digit encoding used in rendered keys
func (n ReadNo) String() string {
	if !n.valid() {
		return "?"
	}
	return strconv.Itoa(int(n))
}

// Key identifies a single sequencing read: a sequencer-assigned query
// name plus a read-number tag. Keys are immutable values; the struct is
// comparable, so keys can be used directly as map keys and compared
// with ==. Any number of goroutines may construct, compare, or render
// keys without coordination.
type Key struct {
	Qname string
	No    ReadNo
}

// ErrEmptyQname is returned by NewKey for an empty query name
var ErrEmptyQname = errors.New("empty query name")

// NewKey builds a read key from a query name and read number.
// The query name must be non-empty and the read number one of the
// three defined variants
func NewKey(qname string, no ReadNo) (Key, error) {
	if qname == "" {
		return Key{}, ErrEmptyQname
	}
	if !no.valid() {
		return Key{}, fmt.Errorf("invalid read number: %d", int(no))
	}
	return Key{Qname: qname, No: no}, nil
}

// String renders the key in the canonical "<qname>/<read number>" form,
// e.g. "SRR000001.123/1"
func (k Key) String() string {
	return k.Qname + "/" + strconv.Itoa(int(k.No))
}

// Equal reports whether two keys identify the same read: byte-equal
// query names and the same read number
func (k Key) Equal(other Key) bool {
	return k == other
}

// Compare orders keys lexicographically by query name bytes, then by
// read-number encoding. It returns -1, 0, or +1 and is a strict total
// order: Compare(a, b) == 0 exactly when a.Equal(b)
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.Qname, other.Qname); c != 0 {
		return c
	}
	switch {
	case k.No < other.No:
		return -1
	case k.No > other.No:
		return 1
	}
	return 0
}

// ParseKey is the inverse of Key.String. Query names may themselves
// contain '/'; only the final separator is structural, so the split is
// on the last slash
func ParseKey(s string) (Key, error) {
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return Key{}, fmt.Errorf("malformed read key %q: missing '/'", s)
	}
	qname, digit := s[:i], s[i+1:]

	var no ReadNo
	switch digit {
	case "0":
		no = Unpaired
	case "1":
		no = FirstMate
	case "2":
		no = SecondMate
	default:
		return Key{}, fmt.Errorf("malformed read key %q: read number must be 0, 1, or 2", s)
	}

	key, err := NewKey(qname, no)
	if err != nil {
		return Key{}, fmt.Errorf("malformed read key %q: %v", s, err)
	}
	return key, nil
}
