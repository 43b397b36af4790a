// Package fields generates particle initial conditions: regular grid
// tilings over a bounding box, carved down to a target geometric region.
package fields
