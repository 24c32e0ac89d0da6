package alloc

// place removes blk from its free bucket and carves out want bytes,
// splitting off and re-inserting a free remainder when at least
// minBlockSize bytes would be left over. blk is returned allocated.
func place(mem []byte, b *buckets, blk Block, want uint32) Block {
	available := blk.Size(mem)
	removeFree(mem, b, blk)

	if available-want >= minBlockSize {
		blk.SetTags(mem, want, true)
		rem := Block(uint32(blk) + want)
		rem.SetTags(mem, available-want, false)
		insertFree(mem, b, rem)
	} else {
		blk.SetTags(mem, available, true)
	}

	return blk
}
