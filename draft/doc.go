// Package draft turns body measurements into the named point sets of a
// trouser pattern, one for the front panel and one for the back panel.
/*

The construction follows the classic single-reference-line drafting
method for trousers: a vertical construction line carries the waist,
body-rise, knee and hem levels; all other points are proportional
offsets of the seat and waist measurements, small fixed ease
allowances, or geometric constructions on earlier points.

Points carry the numbers used by the drafting method (0-30) plus a few
named auxiliaries (fly reference, back fork, dart). The vocabulary is a
closed, enumerated set: an unresolved reference is reported as a
MissingPointError at construction time, never silently substituted.

The back panel reuses a handful of front points as anchors (waist
reference, fork base, hem corners) and then diverges for its larger
seat ease, deeper fork curve and waist dart.

# BSD License

# Copyright (c) the drafter authors

All rights reserved.

Please refer to the license file for more information.
*/
package draft

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'draft'
func tracer() tracing.Trace {
	return tracing.Select("draft")
}
