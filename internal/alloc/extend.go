package alloc

import "log"

// Verbose gates the allocator's only logging: a line per heap extension.
// Off by default, and never consulted on the Alloc/Free/Realloc hot path
// when no extension is needed — grounded on the plain log.Printf usage in
// the teacher's wasm.go and bsatn/decode.go, the only logging convention
// found anywhere in the pack for this concern.
var Verbose = false

// extend grows the arena by at least words 4-byte words (rounded up to an
// even count, keeping the new region 8-byte aligned) and folds it into the
// free-list as a single new free block, coalesced with whatever free block
// (if any) was already sitting at the old high address.
//
// The new free block's header reoccupies the old epilogue's header word —
// RequestMore's returned base is the old high address, one word past that
// header word, since the provider never leaves a gap between the old high
// address and freshly granted bytes, so base serves as the new block's
// payload address — and a fresh epilogue header is written in the last
// word before the new high address.
func (a *Allocator) extend(words uint32) (Block, error) {
	if words%2 != 0 {
		words++
	}
	size := words * wordSize

	base, err := a.provider.RequestMore(size)
	if err != nil {
		return nullBlock, err
	}

	mem := a.provider.View()
	blk := Block(base)
	blk.SetTags(mem, size, false)

	newHigh := a.provider.CurrentHighAddress()
	writeWord(mem, newHigh-wordSize, packWord(0, true))

	if Verbose {
		log.Printf("alloc: extended heap by %d bytes at 0x%x, new high 0x%x", size, base, newHigh)
	}

	insertFree(mem, &a.buckets, blk)
	return coalesce(mem, &a.buckets, blk), nil
}
