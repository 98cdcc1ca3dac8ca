// Package fourbar computes planar four-bar linkage geometry: closed-form
// synthesis of link lengths from three precision positions and position
// analysis of the assembled mechanism at arbitrary crank angles.
//
// Angles on the synthesis boundary are in degrees, matching mechanism
// design practice. Kinematic methods on Linkage take and return radians.
package fourbar
