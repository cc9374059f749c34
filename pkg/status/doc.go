/*
Package status renders script results for people.

	+------------------+        +-------------+
	| operation.Result | -----> |  Formatter  | ---> step / progress lines
	+------------------+        +-------------+
	         |
	         +---------------> Summary ---> pterm table
	         |
	         +---------------> Diff ------> expected vs actual value

🎯 Purpose:
- One line per step, with the step's output or error kind
- Progress over a batch of scripts
- A summary table for the whole run
- An inline diff when a final value does not match

Everything here returns strings. Writing them is up to the caller (the
corex CLI prints through pkg/log).
*/
package status
