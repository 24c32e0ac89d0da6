package alloc

// Block is a block's payload address: the same "bp" a caller holds after
// Alloc, and the address every neighbor/tag computation is relative to.
// It is the Go-native stand-in for spec.md's bp pointer arithmetic,
// grounded on internal/wasm/pointer.go's typed-offset Pointer.
type Block uint32

// nullBlock marks an empty free-list slot or a missing neighbor. Address 0
// is never a valid block: the prologue always occupies the first bytes of
// the arena.
const nullBlock Block = 0

func (b Block) headerAddr() uint32 { return uint32(b) - wordSize }

func (b Block) footerAddr(size uint32) uint32 { return uint32(b) + size - doubleWordSize }

// Size reads the block's current size (header and footer always agree; see
// Check for the invariant audit).
func (b Block) Size(mem []byte) uint32 { return sizeField(readWord(mem, b.headerAddr())) }

// Allocated reports the block's allocated bit.
func (b Block) Allocated(mem []byte) bool { return allocField(readWord(mem, b.headerAddr())) }

// SetTags writes size and the allocated flag to both header and footer.
// Footers are maintained on allocated blocks too, so backward coalescing
// can always find a neighbor's size without first checking its alloc bit.
func (b Block) SetTags(mem []byte, size uint32, allocated bool) {
	word := packWord(size, allocated)
	writeWord(mem, b.headerAddr(), word)
	writeWord(mem, b.footerAddr(size), word)
}

// Next returns the physically adjacent block at a higher address.
func (b Block) Next(mem []byte) Block {
	return Block(uint32(b) + b.Size(mem))
}

// Prev returns the physically adjacent block at a lower address, found via
// its footer immediately preceding b's header.
func (b Block) Prev(mem []byte) Block {
	prevSize := sizeField(readWord(mem, uint32(b)-doubleWordSize))
	return Block(uint32(b) - prevSize)
}

// Free-list links live in the first two payload words while a block is
// free; they're meaningless once the block is allocated.

func (b Block) prevLink(mem []byte) Block { return Block(readWord(mem, uint32(b))) }
func (b Block) nextLink(mem []byte) Block { return Block(readWord(mem, uint32(b)+wordSize)) }

func (b Block) setPrevLink(mem []byte, v Block) { writeWord(mem, uint32(b), uint32(v)) }
func (b Block) setNextLink(mem []byte, v Block) { writeWord(mem, uint32(b)+wordSize, uint32(v)) }
