// Package ioformat reads and writes the router's text file format: a
// header line of grid dimensions and default penalties, followed by
// obstruction and net lines in any order.
//
// Parse performs every configuration-error check up front so a caller
// never builds a grid.Grid from a half-valid Session.
package ioformat
