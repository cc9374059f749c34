/*
Package dynarray provides Array, a generic owned sequence with
bounds-checked access.

Array keeps no spare capacity: every structural change (Add, Remove,
Extend, Reverse) allocates storage of exactly the new length and copies
into it, so Add is O(n). Storage is nil exactly when the array is empty.
This keeps the memory footprint equal to the element count at the cost of
amortized growth; callers building large arrays in a loop should collect
into a slice and use FromSlice.

Element types must be comparable so Contains, Count, Remove and Equal can
use ==. Arrays are not safe for concurrent mutation.
*/
package dynarray
