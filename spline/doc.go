// Package spline produces the smooth curves of a drafted pattern. It
// implements John Hobby's spline interpolation algorithm for curves
// through a sequence of anchor points, plus the single-control-point
// "bulge" arcs that drafting instructions phrase as "curve out by so
// many centimeters".
/*

Every curved seam of a pattern goes through one of two constructions:

Multi-point seams (the back fork) interpolate a smooth curve through
their anchor points. Spline interpolation by Hobby's algorithm results
in aesthetically pleasing curves superior to "normal" spline
interpolation. The primary source of information for "Hobby-splines" is:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985
   http://i.stanford.edu/pub/cstr/reports/cs/tr/85/1047/CS-TR-85-1047.pdf

The practical algorithm is explained in

   Computers & Typesetting, Vol. B & D.
   http://www-cs-faculty.stanford.edu/~knuth/abcde.html

The caller-supplied bias is MetaFont's tension: values above 1 pull the
curve toward its chords, values below 1 let it swing wider. A single
bias applies uniformly to a curve, so identical anchors and bias always
reproduce the identical curve.

Two-point seams (waistband, fly, hip, hem kick-up) use a quadratic arc
whose single control point sits at a perpendicular offset from the
chord midpoint; see BulgeControl and Quad.

Usage:

	c := spline.Through(0.6, p23, fork, p19, p21)
	if err := c.Solve(); err != nil { ... }
	for _, seg := range c.Segments() { ... }   // cubic records
	pts := c.Samples(20)                       // deterministic polyline

# BSD License

# Copyright (c) the drafter authors

All rights reserved.

Please refer to the license file for more information.
*/
package spline
