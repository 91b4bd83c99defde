package draft

import (
	"github.com/seamly/drafter"
)

// Back drafting constants, in centimeters.
const (
	backForkReach = 4.5  // diagonal reach of the back fork point
	backForkAngle = 45   // degrees, up and outward
	dartDepth     = 12.0 // apex distance below the back waist line
	dartHalfWidth = 1.25 // half the dart intake on the waist line
)

// Back drafts the back panel point set. It reuses the front panel's
// waist reference, fork base and hem corners as anchors, then diverges:
// wider seat, deeper fork curve, and a waist dart.
func Back(m Measurements, front *PointSet) (*PointSet, error) {
	b := newBuilder()

	// anchors shared with the front panel
	for _, id := range []PointID{P0, P1, P5, P9, P12, P13, P14, P15} {
		b.copyFrom(front, id)
	}

	// seat extension: quarter of the fly offset beyond the fork base
	b.put(P16, drafter.P(b.at(P5).X()+((m.Seat/8)-1)/4, b.at(P5).Y()))
	b.put(P17, drafter.P(b.at(P16).X(), b.at(P1).Y()+m.BodyRise/4))
	b.put(P18, drafter.P(b.at(P16).X(), 0))
	b.put(P19, drafter.Midpoint(b.at(P16), b.at(P18)))
	b.put(P20, drafter.P(b.at(P18).X()+2, b.at(P18).Y()))
	{
		// 1cm beyond 20, continuing the 19→20 direction
		p, err := drafter.PointAtDistance(b.at(P20), b.at(P19), -1)
		b.derive(P21, p, err)
	}

	// fork underside
	b.put(P22, drafter.P(b.at(P9).X()-(((m.Seat/16)+0.5)/2+0.5), b.at(P9).Y()))
	b.put(P23, drafter.P(b.at(P22).X(), b.at(P22).Y()-0.5))
	b.put(BackFork, drafter.DiagonalPoint(b.at(P16), backForkReach, backForkAngle))

	// back waist line: from 21, quarter waist plus ease, down to the
	// waist level of the front reference point
	backWaist := (m.Waist / 4) + BackWaistEase
	{
		p, err := drafter.PointAtFixedY(b.at(P21), b.at(P0), backWaist)
		b.derive(P24, p, err)
	}
	{
		p, err := drafter.PointAtDistance(b.at(P21), b.at(P24), backWaist/2)
		b.derive(P25, p, err)
	}

	// side seam at the hip line
	b.put(P26, drafter.P(b.at(P17).X()+((m.Seat/4)+backSeatEase), b.at(P17).Y()))

	// widened hem and knee corners
	b.put(P27, drafter.P(b.at(P12).X()+backHemExtra, b.at(P12).Y()))
	b.put(P28, drafter.P(b.at(P13).X()-backHemExtra, b.at(P13).Y()))
	b.put(P29, drafter.P(b.at(P14).X()+backHemExtra, b.at(P14).Y()))
	b.put(P30, drafter.P(b.at(P15).X()-backHemExtra, b.at(P15).Y()))

	// waist dart: apex on the perpendicular dropped from the midpoint
	// of the waist line, pointing into the garment
	{
		ccw, cw, err := drafter.PerpDir(b.at(P21), b.at(P24))
		if err != nil {
			b.derive(DartApex, drafter.Origin, err)
		} else {
			down := ccw
			if cw.Y() < ccw.Y() {
				down = cw
			}
			b.put(DartApex, b.at(P25)+down.Scaled(dartDepth))
		}
	}
	{
		p, err := drafter.PointAtDistance(b.at(P21), b.at(P24), backWaist/2-dartHalfWidth)
		b.derive(DartLeft, p, err)
	}
	{
		p, err := drafter.PointAtDistance(b.at(P21), b.at(P24), backWaist/2+dartHalfWidth)
		b.derive(DartRight, p, err)
	}

	ps, err := b.finish()
	if err != nil {
		return nil, err
	}
	tracer().Infof("back panel drafted with %d points", ps.Len())
	return ps, nil
}

// backIDs is the complete back vocabulary, in construction order.
var backIDs = []PointID{
	P0, P1, P5, P9, P12, P13, P14, P15,
	P16, P17, P18, P19, P20, P21,
	P22, P23, BackFork,
	P24, P25,
	P26,
	P27, P28, P29, P30,
	DartApex, DartLeft, DartRight,
}
