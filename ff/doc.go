/*
Package ff holds force-field type records and the two containers they live in:
the reference Catalog, read-only once filled, and the working Registry of a
system, which interns the records a system actually uses.

Catalogs can be read from a line-oriented text format:

	; comment
	[ defaults ]
	sigma-epsilon
	[ atomtypes ]
	; name element mass charge sigma epsilon ; description
	c3  C  12.01  0.0  3.3977  0.1078  ; sp3 carbon
	[ bondtypes ]
	; a b k r0
	c3 hc 347.0 1.0969
	[ angletypes ]
	; a b c k theta0
	[ dihedraltypes ]
	; a b c d k n phase
	X  c3 c3 X  0.156 3 0.0
	[ impropertypes ]
	; center n1 n2 n3 k n phase

#define, #undef, #ifdef, #ifndef, #else, #endif and #include are supported.
Files ending in .zst or .gz are decompressed on the fly.
*/
package ff
