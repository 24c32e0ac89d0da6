package alloc

// coalesce merges blk with any free physical neighbors per the four-case
// table in §4.6. blk must already be inserted into its own bucket (Free,
// extend and the realloc remainder paths all insert before calling
// coalesce); coalesce takes care of removing and re-inserting whatever ends
// up in the final merged block.
//
// The prologue and epilogue are always tagged allocated, so the neighbor
// lookups below never need special-casing at the ends of the heap: Prev of
// the first real block lands on the prologue, Next of the last real block
// lands on the epilogue, and both read back allocated.
func coalesce(mem []byte, b *buckets, blk Block) Block {
	prev := blk.Prev(mem)
	next := blk.Next(mem)
	prevFree := !prev.Allocated(mem)
	nextFree := !next.Allocated(mem)

	switch {
	case !prevFree && !nextFree:
		return blk

	case !prevFree && nextFree:
		removeFree(mem, b, blk)
		removeFree(mem, b, next)
		size := blk.Size(mem) + next.Size(mem)
		blk.SetTags(mem, size, false)
		insertFree(mem, b, blk)
		return blk

	case prevFree && !nextFree:
		removeFree(mem, b, blk)
		removeFree(mem, b, prev)
		size := prev.Size(mem) + blk.Size(mem)
		prev.SetTags(mem, size, false)
		insertFree(mem, b, prev)
		return prev

	default: // both free
		removeFree(mem, b, blk)
		removeFree(mem, b, prev)
		removeFree(mem, b, next)
		size := prev.Size(mem) + blk.Size(mem) + next.Size(mem)
		prev.SetTags(mem, size, false)
		insertFree(mem, b, prev)
		return prev
	}
}
