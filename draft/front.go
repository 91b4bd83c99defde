package draft

import (
	"github.com/seamly/drafter"
)

// Ease allowances of the drafting method, in centimeters. These are
// fixed by the method, not configurable per draft.
const (
	frontSeatEase  = 2.0 // quarter-seat ease at the front hip line
	FrontWaistEase = 2.5 // quarter-waist ease on the front waistband
	backSeatEase   = 3.0 // quarter-seat ease at the back hip line
	BackWaistEase  = 4.5 // quarter-waist ease on the back waistband
	hemKickUp      = 1.5 // knee-line widening of the hem corners
	backHemExtra   = 2.0 // widening of every back hem corner
)

// Front drafts the front panel point set from the measurements.
//
// The construction order is fixed: the vertical reference line first
// (0: waist, 1: body rise, 2: hem, 3: knee, 4: hip), then the fly
// line, waist, hem and knee points. Each point depends only on raw
// measurements and earlier points.
func Front(m Measurements) (*PointSet, error) {
	b := newBuilder()

	// vertical reference line
	b.put(P0, drafter.P(0, 0))
	b.put(P1, drafter.P(0, -((m.BodyRise+1)-m.WaistbandDepth)))
	b.put(P2, drafter.P(0, b.at(P1).Y()-m.Inseam))
	b.put(P3, drafter.P(0, b.at(P2).Y()+(m.Inseam/2)+5))
	b.put(P4, drafter.P(0, b.at(P1).Y()+m.BodyRise/4))

	// fly reference and fly curve point
	b.put(FlyRef, drafter.P(b.at(P0).X()-((m.Seat/8)-1), b.at(P1).Y()))
	b.put(P5, b.at(FlyRef))
	b.put(FlyCurve, drafter.DiagonalPoint(b.at(FlyRef), 3, 45))

	// hip line and fork
	b.put(P6, drafter.P(b.at(FlyRef).X(), b.at(P4).Y()))
	b.put(P7, drafter.P(b.at(FlyRef).X(), b.at(P0).Y()))
	b.put(P8, drafter.P(b.at(P6).X()+((m.Seat/4)+frontSeatEase), b.at(P4).Y()))
	b.put(P9, drafter.P(b.at(FlyRef).X()-((m.Seat/16)+0.5), b.at(P1).Y()))

	// waist line
	b.put(P10, drafter.P(b.at(P7).X()+1, b.at(P0).Y()))
	b.put(P11, drafter.P(b.at(P10).X()+((m.Waist/4)+FrontWaistEase), b.at(P0).Y()))

	// hem and knee line
	b.put(P12, drafter.P(b.at(P2).X()+m.BottomWidth/2, b.at(P2).Y()))
	b.put(P13, drafter.P(b.at(P2).X()-m.BottomWidth/2, b.at(P2).Y()))
	b.put(P14, drafter.P(b.at(P3).X()+(m.BottomWidth/2+hemKickUp), b.at(P3).Y()))
	b.put(P15, drafter.P(b.at(P3).X()-(m.BottomWidth/2+hemKickUp), b.at(P3).Y()))

	// waistband adjustment point, 1cm down the fly line
	{
		p, err := drafter.PointAtDistance(b.at(P10), b.at(P6), 1)
		b.derive(WaistA, p, err)
	}

	ps, err := b.finish()
	if err != nil {
		return nil, err
	}
	tracer().Infof("front panel drafted with %d points", ps.Len())
	return ps, nil
}

// frontIDs is the complete front vocabulary, in construction order.
// Kept next to Front so the two stay in sync.
var frontIDs = []PointID{
	P0, P1, P2, P3, P4,
	FlyRef, P5, FlyCurve,
	P6, P7, P8, P9,
	P10, P11,
	P12, P13, P14, P15,
	WaistA,
}
