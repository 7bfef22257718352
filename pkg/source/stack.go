package source

import "github.com/hoconlabs/hocon/pkg/config"

// MaxIncludeDepth bounds how deeply includes may nest before a guarded
// parse fails with a CycleError. Legitimate configurations stay far below
// it; reaching it almost always means the includes form a cycle.
const MaxIncludeDepth = 50

// parseStack tracks the sources in flight on one parse chain. Every
// factory-built Source owns a fresh stack; sources built by RelativeTo
// share their parent's, so every nested include counts against one bound
// while unrelated parses never see each other's recursion state.
//
// A stack belongs to a single call chain and is not safe for concurrent
// use; parses on separately constructed sources are fully independent.
type parseStack struct {
	entries []*Source
}

// push records s as in flight. At the bound it fails instead, with a
// CycleError listing every in-flight source description in push order.
func (ps *parseStack) push(s *Source) error {
	if len(ps.entries) >= MaxIncludeDepth {
		chain := make([]string, len(ps.entries))
		for i, entry := range ps.entries {
			chain[i] = entry.traceDescription()
		}
		return &config.CycleError{Origin: s.origin, Depth: MaxIncludeDepth, Chain: chain}
	}
	ps.entries = append(ps.entries, s)
	return nil
}

// pop removes the most recent entry. When the stack empties, the backing
// storage is discarded so nothing lingers between unrelated parses.
func (ps *parseStack) pop() {
	if len(ps.entries) == 0 {
		return
	}
	ps.entries = ps.entries[:len(ps.entries)-1]
	if len(ps.entries) == 0 {
		ps.entries = nil
	}
}

// depth reports how many parses are currently in flight.
func (ps *parseStack) depth() int {
	return len(ps.entries)
}
