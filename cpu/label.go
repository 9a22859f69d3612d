package cpu

import (
	"iter"
	"maps"
	"strings"
)

// LabelTable tracks the labels of the loaded program.
//
// The address index is built once at load time and is what jumps resolve
// against. The visited map records each address the first time a jump
// resolves it, and only feeds the memory dump.
type LabelTable struct {
	address map[string]int
	visited map[int]string
}

// Reset forgets all labels.
func (lt *LabelTable) Reset() {
	clear(lt.address)
	clear(lt.visited)
}

// Define binds a label to an address. The first definition of a label wins.
func (lt *LabelTable) Define(name string, addr int) (ok bool) {
	if lt.address == nil {
		lt.address = make(map[string]int, 8)
	}
	if _, dup := lt.address[name]; dup {
		return false
	}
	lt.address[name] = addr
	return true
}

// Resolve finds the address of a label. A trailing ':' on the name is ignored.
func (lt *LabelTable) Resolve(name string) (addr int, ok bool) {
	addr, ok = lt.address[strings.TrimSuffix(name, ":")]
	return
}

// Visit records that a jump resolved a label at addr.
func (lt *LabelTable) Visit(addr int, name string) {
	if lt.visited == nil {
		lt.visited = make(map[int]string, 8)
	}
	lt.visited[addr] = strings.TrimSuffix(name, ":")
}

// Name returns the label recorded for addr by a jump, if any.
func (lt *LabelTable) Name(addr int) (name string, ok bool) {
	name, ok = lt.visited[addr]
	return
}

// All iterates over every defined label and its address.
func (lt *LabelTable) All() iter.Seq2[string, int] {
	return maps.All(lt.address)
}
