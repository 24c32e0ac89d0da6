package arena

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// wasmPageSize is the fixed WASM linear memory page size (64 KiB).
const wasmPageSize = 1 << 16

// memoryOnlyModule is the smallest possible WASM binary that exports a
// growable linear memory named "memory" (min 1 page, max 65536 pages / 4
// GiB) and nothing else: no functions, no data, no imports. It exists so
// WazeroMemory can back the allocator with a real WASM linear memory
// without shipping a full guest program — the same instance.Memory() /
// memory.Grow(deltaPages) surface the teacher's internal/wasm/wasm.go
// already drives off a compiled guest module is reused here unchanged; only
// the module being compiled is synthetic.
//
//	(module
//	  (memory (export "memory") 1 65536))
var memoryOnlyModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic "\0asm"
	0x01, 0x00, 0x00, 0x00, // version 1

	// memory section (id 5): one memtype, flags=has-max, min=1, max=65536
	0x05, 0x06, 0x01, 0x01, 0x01, 0x80, 0x80, 0x04,

	// export section (id 7): export "memory" as memory index 0
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

// WazeroMemory is a Provider/ByteView backed by a real WASM linear memory
// instantiated through wazero, the same runtime the teacher's
// internal/wasm package drives for guest modules. Growth requests are
// rounded up to whole 64 KiB pages; WazeroMemory tracks the logical,
// byte-granular high address separately from the page-rounded physical
// memory size.
type WazeroMemory struct {
	runtime wazero.Runtime
	module  api.Module
	memory  api.Memory
	used    uint32
}

// NewWazeroMemory compiles and instantiates memoryOnlyModule, returning a
// Provider whose backing store is the resulting WASM linear memory.
func NewWazeroMemory(ctx context.Context) (*WazeroMemory, error) {
	rt := wazero.NewRuntime(ctx)

	compiled, err := rt.CompileModule(ctx, memoryOnlyModule)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("arena: compiling memory-only module: %w", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("heaparena"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("arena: instantiating memory-only module: %w", err)
	}

	mem := mod.Memory()
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("arena: instantiated module does not export memory")
	}

	return &WazeroMemory{runtime: rt, module: mod, memory: mem}, nil
}

func (w *WazeroMemory) RequestMore(n uint32) (uint32, error) {
	if n == 0 {
		return w.used, nil
	}

	need := w.used + n
	if need < w.used {
		return 0, fmt.Errorf("%w: requested size overflows address space", ErrExhausted)
	}

	if have := w.memory.Size(); need > have {
		deltaBytes := need - have
		deltaPages := deltaBytes / wasmPageSize
		if deltaBytes%wasmPageSize != 0 {
			deltaPages++
		}
		if _, ok := w.memory.Grow(deltaPages); !ok {
			return 0, fmt.Errorf("%w: wasm memory.Grow(%d) refused", ErrExhausted, deltaPages)
		}
	}

	base := w.used
	w.used = need
	return base, nil
}

func (w *WazeroMemory) CurrentHighAddress() uint32 {
	return w.used
}

func (w *WazeroMemory) View() []byte {
	buf, ok := w.memory.Read(0, w.used)
	if !ok {
		// Size() can only grow and w.used never exceeds it, so this would
		// only happen if the module were closed underneath us.
		panic("arena: wazero memory view out of bounds")
	}
	return buf
}

// Close releases the underlying wazero runtime.
func (w *WazeroMemory) Close(ctx context.Context) error {
	return w.runtime.Close(ctx)
}
