package sortable

import "facette.io/natsort"

// String orders text byte by byte, the way Go compares strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Natural orders text with runs of digits compared by value, so "v2" sorts
// before "v10". natsort.Compare reports equal strings as ordered, so equality
// is checked first to keep LessThan strict.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return n == other
}

func (n Natural) LessThan(other Natural) bool {
	return n != other && natsort.Compare(string(n), string(other))
}
