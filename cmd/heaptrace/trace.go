package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clockworklabs/heapalloc/pkg/heapalloc"
)

// runTrace replays a sequence of alloc/free/realloc operations read from r
// against a fresh allocator. Each non-blank, non-comment line is one op:
//
//	a <id> <size>     allocate <size> bytes, remember the result as <id>
//	f <id>             free the block previously bound to <id>
//	r <id> <size>      realloc the block bound to <id> to <size> bytes,
//	                   rebinding <id> to the result
//
// <id> is an arbitrary trace-local label, not an address; this mirrors the
// id-indexed trace format malloc-lab style test drivers use instead of
// making trace files carry real addresses, which the allocator is free to
// assign however it likes.
func runTrace(r io.Reader, verify bool) (stats traceStats, err error) {
	a, err := heapalloc.New()
	if err != nil {
		return stats, fmt.Errorf("heaptrace: %w", err)
	}

	bound := map[string]uint32{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "a":
			if len(fields) != 3 {
				return stats, fmt.Errorf("heaptrace: line %d: want 'a <id> <size>'", lineNo)
			}
			size, perr := strconv.ParseUint(fields[2], 10, 32)
			if perr != nil {
				return stats, fmt.Errorf("heaptrace: line %d: %w", lineNo, perr)
			}
			p, aerr := a.Alloc(uint32(size))
			if aerr != nil {
				return stats, fmt.Errorf("heaptrace: line %d: %w", lineNo, aerr)
			}
			bound[fields[1]] = p
			stats.Allocs++

		case "f":
			if len(fields) != 2 {
				return stats, fmt.Errorf("heaptrace: line %d: want 'f <id>'", lineNo)
			}
			p, ok := bound[fields[1]]
			if !ok {
				return stats, fmt.Errorf("heaptrace: line %d: unbound id %q", lineNo, fields[1])
			}
			a.Free(p)
			delete(bound, fields[1])
			stats.Frees++

		case "r":
			if len(fields) != 3 {
				return stats, fmt.Errorf("heaptrace: line %d: want 'r <id> <size>'", lineNo)
			}
			p, ok := bound[fields[1]]
			if !ok {
				return stats, fmt.Errorf("heaptrace: line %d: unbound id %q", lineNo, fields[1])
			}
			size, perr := strconv.ParseUint(fields[2], 10, 32)
			if perr != nil {
				return stats, fmt.Errorf("heaptrace: line %d: %w", lineNo, perr)
			}
			np, rerr := a.Realloc(p, uint32(size))
			if rerr != nil {
				return stats, fmt.Errorf("heaptrace: line %d: %w", lineNo, rerr)
			}
			bound[fields[1]] = np
			stats.Reallocs++

		default:
			return stats, fmt.Errorf("heaptrace: line %d: unknown op %q", lineNo, fields[0])
		}

		if verify {
			if cerr := a.Check(); cerr != nil {
				return stats, fmt.Errorf("heaptrace: line %d: %w", lineNo, cerr)
			}
			stats.Checks++
		}
	}

	if serr := scanner.Err(); serr != nil {
		return stats, fmt.Errorf("heaptrace: %w", serr)
	}
	return stats, nil
}

type traceStats struct {
	Allocs   int
	Frees    int
	Reallocs int
	Checks   int
}

func (s traceStats) String() string {
	return fmt.Sprintf("alloc=%d free=%d realloc=%d checks=%d", s.Allocs, s.Frees, s.Reallocs, s.Checks)
}
