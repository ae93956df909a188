package facet

import (
	"fmt"
	"sync/atomic"
)

// AttrID is the unique storage token of one stored attribute. Tokens are
// allocated from a process-wide counter, never derived from names, so two
// interfaces declaring attributes with the same name can never collide in
// entity storage.
type AttrID uint64

var attrIDSource atomic.Uint64

// AttrMode distinguishes attributes backed by entity storage from attributes
// an implementation must compute itself.
type AttrMode uint8

const (
	ModeStored AttrMode = iota
	ModeComputed
)

// AttrDecl is one attribute declaration within an interface.
type AttrDecl struct {
	Name string
	Mode AttrMode
	ID   AttrID // zero for computed attributes
}

// Interface declares a named capability contract: a set of stored and
// computed attributes. An entity type installs exactly one implementation per
// interface. Interfaces are immutable once an implementation is defined
// against them.
type Interface struct {
	name   string
	decls  []AttrDecl
	byName map[string]int
	frozen bool
}

// NewInterface declares a new capability interface.
func NewInterface(name string) *Interface {
	return &Interface{
		name:   name,
		byName: make(map[string]int),
	}
}

func (i *Interface) Name() string { return i.name }

// Decls returns the attribute declarations in declaration order.
func (i *Interface) Decls() []AttrDecl { return i.decls }

// Stored declares a stored attribute on the interface and returns its typed
// descriptor. Must be called before any implementation of the interface is
// defined; duplicate names panic, since declarations run at package init.
func Stored[T any](i *Interface, name string) *Attribute[T] {
	id := AttrID(attrIDSource.Add(1))
	i.declare(AttrDecl{Name: name, Mode: ModeStored, ID: id})
	return &Attribute[T]{id: id, name: name, iface: i}
}

// Computed declares an attribute the implementation must supply as a pure
// read path. Computed attributes never get a storage token.
func Computed(i *Interface, name string) {
	i.declare(AttrDecl{Name: name, Mode: ModeComputed})
}

func (i *Interface) declare(d AttrDecl) {
	if i.frozen {
		panic(fmt.Sprintf("facet: interface %q is frozen, cannot declare %q", i.name, d.Name))
	}
	if _, dup := i.byName[d.Name]; dup {
		panic(fmt.Sprintf("facet: interface %q declares attribute %q twice", i.name, d.Name))
	}
	i.byName[d.Name] = len(i.decls)
	i.decls = append(i.decls, d)
}

func (i *Interface) lookup(name string) (AttrDecl, bool) {
	idx, ok := i.byName[name]
	if !ok {
		return AttrDecl{}, false
	}
	return i.decls[idx], true
}

func (i *Interface) freeze() { i.frozen = true }

func (i *Interface) String() string { return i.name }
