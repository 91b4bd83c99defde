package draft

import (
	"errors"
	"fmt"

	"github.com/seamly/drafter"
)

// PointID identifies one named point of the drafting method. The set is
// closed: tables and builders can only reference the identifiers below,
// so a dangling reference is detectable at construction time.
type PointID uint8

// The drafting method's point vocabulary. P0-P15 (plus the fly points
// and A) belong to the front panel, P16-P30 (plus fork and dart points)
// to the back panel.
const (
	P0 PointID = iota
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	P10
	P11
	P12
	P13
	P14
	P15
	P16
	P17
	P18
	P19
	P20
	P21
	P22
	P23
	P24
	P25
	P26
	P27
	P28
	P29
	P30
	FlyRef
	FlyCurve
	WaistA
	BackFork
	DartApex
	DartLeft
	DartRight
	numPointIDs // sentinel, keep last
)

var pointNames = map[PointID]string{
	FlyRef:    "fly_ref",
	FlyCurve:  "fly_curve",
	WaistA:    "A",
	BackFork:  "back_fork",
	DartApex:  "dart_apex",
	DartLeft:  "dart_left",
	DartRight: "dart_right",
}

// String returns the drafting method's label for the point: the plain
// number for P0-P30, a mnemonic name otherwise.
func (id PointID) String() string {
	if id <= P30 {
		return fmt.Sprintf("%d", uint8(id))
	}
	if name, ok := pointNames[id]; ok {
		return name
	}
	return fmt.Sprintf("point(%d)", uint8(id))
}

// ErrMissingPoint is the sentinel wrapped by every MissingPointError.
var ErrMissingPoint = errors.New("unresolved point identifier")

// MissingPointError reports a reference to a point that is absent from
// a point set, naming the identifier.
type MissingPointError struct {
	ID PointID
}

func (e MissingPointError) Error() string {
	return fmt.Sprintf("point %q is not resolved", e.ID.String())
}

// Unwrap makes errors.Is(err, ErrMissingPoint) work.
func (e MissingPointError) Unwrap() error {
	return ErrMissingPoint
}

// PointSet is an immutable mapping from point identifiers to drafted
// coordinates, in construction order. Build one with Front or Back.
type PointSet struct {
	points [numPointIDs]drafter.Pair
	set    [numPointIDs]bool
	order  []PointID
}

// Get resolves an identifier. Absent identifiers yield a
// MissingPointError; there are no default coordinates.
func (ps *PointSet) Get(id PointID) (drafter.Pair, error) {
	if ps == nil || id >= numPointIDs || !ps.set[id] {
		return drafter.Origin, MissingPointError{ID: id}
	}
	return ps.points[id], nil
}

// Has is a predicate: does the set resolve id?
func (ps *PointSet) Has(id PointID) bool {
	return ps != nil && id < numPointIDs && ps.set[id]
}

// IDs returns the identifiers in construction order.
func (ps *PointSet) IDs() []PointID {
	ids := make([]PointID, len(ps.order))
	copy(ids, ps.order)
	return ids
}

// Len returns the number of resolved points.
func (ps *PointSet) Len() int {
	return len(ps.order)
}

// === Builder ===============================================================

// builder accumulates points in construction order. Errors latch: after
// the first failure every method returns immediately, and the failure
// surfaces once from finish().
type builder struct {
	ps  *PointSet
	err error
}

func newBuilder() *builder {
	return &builder{ps: &PointSet{}}
}

// put records a point under id.
func (b *builder) put(id PointID, p drafter.Pair) {
	if b.err != nil {
		return
	}
	if !b.ps.set[id] {
		b.ps.order = append(b.ps.order, id)
	}
	b.ps.points[id] = p
	b.ps.set[id] = true
}

// at resolves an already-constructed point. A reference to a point that
// has not been put yet latches a MissingPointError.
func (b *builder) at(id PointID) drafter.Pair {
	if b.err != nil {
		return drafter.Origin
	}
	p, err := b.ps.Get(id)
	if err != nil {
		b.err = err
	}
	return p
}

// derive records a point produced by a fallible construction.
func (b *builder) derive(id PointID, p drafter.Pair, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = fmt.Errorf("constructing point %q: %w", id.String(), err)
		return
	}
	b.put(id, p)
}

// copyFrom reuses an anchor point from another panel's set.
func (b *builder) copyFrom(src *PointSet, id PointID) {
	if b.err != nil {
		return
	}
	p, err := src.Get(id)
	if err != nil {
		b.err = err
		return
	}
	b.put(id, p)
}

func (b *builder) finish() (*PointSet, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.ps, nil
}
