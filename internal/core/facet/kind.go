package facet

// Kind identifies an event type. Kinds form a hierarchy: a kind created with a
// parent is a specialization of it, and dispatch walks the lineage from the
// most specific kind to the most general one.
type Kind struct {
	name    string
	parent  *Kind
	lineage []*Kind
}

// NewKind creates an event kind. Pass a nil parent for a root kind.
func NewKind(name string, parent *Kind) *Kind {
	k := &Kind{name: name, parent: parent}
	k.lineage = append(k.lineage, k)
	if parent != nil {
		k.lineage = append(k.lineage, parent.lineage...)
	}
	return k
}

func (k *Kind) Name() string { return k.name }

func (k *Kind) Parent() *Kind { return k.parent }

// Lineage returns the kind followed by its ancestors, most specific first.
// The returned slice is shared; callers must not modify it.
func (k *Kind) Lineage() []*Kind { return k.lineage }

// Is reports whether k is other or a descendant of other.
func (k *Kind) Is(other *Kind) bool {
	for _, a := range k.lineage {
		if a == other {
			return true
		}
	}
	return false
}

func (k *Kind) String() string { return k.name }
