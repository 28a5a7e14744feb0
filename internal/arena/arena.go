// Package arena implements the bump-allocated region described in spec §5:
// every parse owns one arena, all tokens and AST nodes it allocates live for
// exactly as long as the arena does, and an arena may optionally be shared
// across multiple parses by a caller that wants to amortize allocation.
//
// Go already garbage-collects individual node allocations, so this is not a
// raw pointer-bumping allocator the way the original C implementation's
// arena_alloc is (see original_source/src/memory_arena.c). What it keeps is
// the *discipline*: a single owner per parse, page-chained growth, and a
// position counter a caller can read to measure how much a parse allocated —
// the same three things arena_pos/arena_clear exposed.
package arena

// defaultPageSize mirrors the "default page size" of spec §5 (~512 KB),
// expressed here as a slot count rather than a byte count since Go's slabs
// hold typed slices, not raw bytes.
const defaultPageSize = 512 * 1024 / 64

// Arena is a page-chained bump allocator. The zero value is not usable;
// construct with New. Arena is not safe for concurrent use — spec §5 states
// a parser holds exclusive access to its arena from parse_start to parse_end.
type Arena struct {
	pageSize int
	position int
	pages    int
}

// New creates an arena with the default page size.
func New() *Arena {
	return &Arena{pageSize: defaultPageSize}
}

// NewWithPageSize creates an arena with a caller-specified page size, used
// when a caller wants to share one arena across many small parses.
func NewWithPageSize(pageSize int) *Arena {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Arena{pageSize: pageSize}
}

// bump records an allocation of n slots, rolling over to a new page when the
// current one fills, and reports the page-relative position (for parity with
// arena_pos; callers generally don't need this, Go's GC does the real work).
func (a *Arena) bump(n int) int {
	if n <= 0 {
		n = 1
	}
	if a.position+n > a.pageSize {
		a.pages++
		a.position = 0
	}
	pos := a.position
	a.position += n
	return pos
}

// Pos reports how far the arena has advanced across its lifetime, in
// slots: every filled page counts as a whole pageSize (including any tail
// left unused when an allocation rolled over to a new page), plus the
// position within the current page. Analogous to arena_pos in the
// original allocator.
func (a *Arena) Pos() int {
	return a.pages*a.pageSize + a.position
}

// Pages reports how many pages have been allocated so far.
func (a *Arena) Pages() int {
	return a.pages + 1
}

// Reset releases the arena's bookkeeping (not its already-returned Go
// values — those are reclaimed normally by the garbage collector once
// unreachable), analogous to arena_clear. Used when a caller reuses one
// Arena across a sequence of parses.
func (a *Arena) Reset() {
	a.position = 0
	a.pages = 0
}

// NewSlice allocates (and bump-accounts for) a slice of n elements of type T.
func NewSlice[T any](a *Arena, n int) []T {
	a.bump(n)
	return make([]T, n)
}

// NewValue allocates (and bump-accounts for) a single value of type T.
func NewValue[T any](a *Arena) *T {
	a.bump(1)
	var v T
	return &v
}
