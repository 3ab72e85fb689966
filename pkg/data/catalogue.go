package data

import (
	"errors"
	"fmt"
)

// ErrOutOfSequence is returned when a record is appended out of id order.
var ErrOutOfSequence = errors.New("record out of sequence")

// Catalogue is the append-only list of records loaded this session. Index i
// (1-based) always holds the record fetched for source id i.
type Catalogue struct {
	records []*Record
}

func NewCatalogue() *Catalogue {
	return &Catalogue{}
}

func (c *Catalogue) Len() int {
	return len(c.records)
}

// Append adds records in order. It rejects the whole call if any record's id
// does not continue the sequence, leaving the catalogue unchanged.
func (c *Catalogue) Append(records ...*Record) error {
	next := len(c.records) + 1
	for i, r := range records {
		if r == nil {
			return fmt.Errorf("%w: nil record at position %d", ErrOutOfSequence, next+i)
		}
		if r.ID != next+i {
			return fmt.Errorf("%w: got id %d, want %d", ErrOutOfSequence, r.ID, next+i)
		}
	}
	c.records = append(c.records, records...)
	return nil
}

// At returns the record at the 1-based index, or nil when out of range.
func (c *Catalogue) At(index int) *Record {
	if index < 1 || index > len(c.records) {
		return nil
	}
	return c.records[index-1]
}

// All returns a copy of the record slice in load order.
func (c *Catalogue) All() []*Record {
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}
