// Package pace reads and writes the PACE 2023 twin-width formats.
//
// Graphs (.gr):
//
//	c optional comment lines
//	p tww <n> <m>
//	<u> <v>          m edge lines, 1-based ids
//
// Solutions: one line "<survivor> <removed>" per contraction, 1-based, in
// application order; comment lines start with "c".
//
// Every parse error wraps ErrBadFormat and names the offending line.
package pace
