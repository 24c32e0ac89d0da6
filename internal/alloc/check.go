package alloc

import "fmt"

// CheckError names the specific invariant Check found violated. Numbers
// are an internal cross-reference to the heap invariants 1–7 of the data
// model (§3), not stable API.
type CheckError struct {
	Invariant int
	Addr      uint32
	Message   string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("alloc: invariant %d violated at 0x%x: %s", e.Invariant, e.Addr, e.Message)
}

// Check audits the heap's internal consistency: the physical block chain
// terminates on an allocated zero-size epilogue with no two adjacent free
// blocks and matching header/footer tags, and every bucket's contents are
// allocated-free, correctly classified, correctly linked, in bounds, and
// exactly the set of free blocks the physical chain itself sees.
//
// Off by default on every allocator path; call it explicitly from tests or
// a tracing harness. Never called internally by Alloc/Free/Realloc.
func (a *Allocator) Check() error {
	mem := a.mem()
	high := a.provider.CurrentHighAddress()

	physicallyFree := make(map[uint32]bool)
	prevWasFree := false

	for blk := a.prologue.Next(mem); ; {
		if uint32(blk) >= high {
			return &CheckError{3, uint32(blk), "physical chain ran past the heap's high address without reaching the epilogue"}
		}

		size := blk.Size(mem)
		allocated := blk.Allocated(mem)

		if size == 0 {
			if !allocated {
				return &CheckError{3, uint32(blk), "chain terminated on a free zero-size block instead of the epilogue"}
			}
			break
		}

		header := readWord(mem, blk.headerAddr())
		footer := readWord(mem, blk.footerAddr(size))
		if header != footer {
			return &CheckError{2, uint32(blk), "header and footer disagree"}
		}

		if !allocated {
			if prevWasFree {
				return &CheckError{4, uint32(blk), "two physically adjacent free blocks were not coalesced"}
			}
			physicallyFree[uint32(blk)] = true
		}
		prevWasFree = !allocated

		blk = blk.Next(mem)
	}

	bucketed := make(map[uint32]bool)
	for idx := 0; idx < numBuckets; idx++ {
		var prev Block = nullBlock
		for cur := a.buckets[idx]; cur != nullBlock; cur = cur.nextLink(mem) {
			if uint32(cur) < uint32(a.prologue) || uint32(cur) >= high {
				return &CheckError{7, uint32(cur), "free-list pointer outside heap bounds"}
			}
			if cur.Allocated(mem) {
				return &CheckError{5, uint32(cur), "allocated block present in a free list"}
			}
			if got := bucketIndex(cur.Size(mem)); got != idx {
				return &CheckError{5, uint32(cur), fmt.Sprintf("block belongs in bucket %d, found in bucket %d", got, idx)}
			}
			if cur.prevLink(mem) != prev {
				return &CheckError{6, uint32(cur), "prev link does not point back to the preceding list entry"}
			}
			if bucketed[uint32(cur)] {
				return &CheckError{5, uint32(cur), "block present in more than one free list"}
			}
			bucketed[uint32(cur)] = true
			prev = cur
		}
	}

	for addr := range physicallyFree {
		if !bucketed[addr] {
			return &CheckError{5, addr, "free block in the physical chain is missing from its bucket"}
		}
	}
	for addr := range bucketed {
		if !physicallyFree[addr] {
			return &CheckError{5, addr, "bucketed block is not free in the physical chain"}
		}
	}

	return nil
}
