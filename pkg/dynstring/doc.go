/*
Package dynstring provides String, a mutable byte string with explicit
capacity tracking.

	+-----------------------------------------------+
	| H | e | l | l | o | \0|   |   | ... |   |   |
	+-----------------------------------------------+
	  <------ Len() ------>
	  <------------------- Cap() ------------------>

Capacity always rounds len+1 up to a multiple of GrowthUnit, so there is
room for the NUL terminator that is kept after the content for C interop.
Content, comparison and iteration never look at that terminator.

Every mutation that changes the length allocates a freshly sized buffer and
swaps it in; a call that fails or is a no-op leaves the string untouched.
Case mapping and reversal work in place.

All byte classes (case, whitespace, digits) are ASCII. A String is not safe
for concurrent mutation; callers that share one across goroutines must
synchronize access themselves.

Example:

	s := dynstring.From("Hello")
	s.AppendString(" World")
	s.ToUpper()
	fmt.Println(s, s.Len()) // HELLO WORLD 11
*/
package dynstring
