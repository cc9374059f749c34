/*
Package config loads corex scripts: declarative sequences of container
operations replayed by package operation.

	            +-------------+
	            |   Script    |
	            |   (steps)   |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+  +--+---+   +---+--+  +---+--+
	| YAML |  | JSON |   | HCL  |  | TOML |
	+------+  +------+   +------+  +------+

🎯 Purpose:
- Parses scripts in any registered format, chosen by file suffix
- Validates kinds, element types, ops and expected error kinds
- Finds script files with doublestar globs

🔄 Flow:
1. Discover walks a root directory for matching files
2. Load reads a file and hands it to the parser for its suffix
3. Validate fills defaults (name from file stem, element string)
4. The validated Script goes to operation.Execute

📝 Script shape (YAML):

	name: greeting
	kind: string
	initial: Hello
	steps:
	  - op: append
	    args: [" World"]
	  - op: upper
	  - op: to_int
	    error: conversion
	expect:
	  value: HELLO WORLD
	  size: 11

Args stay loosely typed here ([]any); the operation package converts them
to the container's element type and reports mismatches. Quote text args:
YAML, TOML and HCL decode unquoted numbers, so 1.0 reaches a string op as
"1". JSON keeps the spelling (numbers arrive as json.Number).
*/
package config
