// Package content loads entity type definitions from YAML. A definition
// names, per type, the component implementations to install with their
// constructor arguments, plus the modifiers the type contributes to related
// entities. Implementations are looked up in a registry by name, so content
// files stay decoupled from Go symbols.
package content

import (
	"fmt"

	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/game/components"
)

// Registry resolves component implementation names and attribute references
// ("interface.attribute") used by content files.
type Registry struct {
	impls map[string]*facet.Implementation
	attrs map[string]facet.AttrID
}

func NewRegistry() *Registry {
	return &Registry{
		impls: make(map[string]*facet.Implementation),
		attrs: make(map[string]facet.AttrID),
	}
}

// Register adds an implementation under its own name and indexes the stored
// attributes of its interface for modifier references.
func (r *Registry) Register(impl *facet.Implementation) error {
	name := impl.Name()
	if _, dup := r.impls[name]; dup {
		return fmt.Errorf("content: implementation %q registered twice", name)
	}
	r.impls[name] = impl

	iface := impl.Interface()
	for _, decl := range iface.Decls() {
		if decl.Mode != facet.ModeStored {
			continue
		}
		r.attrs[iface.Name()+"."+decl.Name] = decl.ID
	}
	return nil
}

// Implementation resolves a component implementation by name.
func (r *Registry) Implementation(name string) (*facet.Implementation, bool) {
	impl, ok := r.impls[name]
	return impl, ok
}

// Attribute resolves an "interface.attribute" reference to its storage token.
func (r *Registry) Attribute(ref string) (facet.AttrID, bool) {
	id, ok := r.attrs[ref]
	return id, ok
}

// Default returns a registry with every game component registered.
func Default() *Registry {
	r := NewRegistry()
	for _, impl := range []*facet.Implementation{
		components.Solid,
		components.Empty,
		components.PortalDownstairs,
		components.PortalUpstairs,
		components.ContainerImpl,
		components.PortableImpl,
		components.CombatantImpl,
		components.EquipmentImpl,
		components.GenericAI,
		components.PlayerIntelligence,
	} {
		if err := r.Register(impl); err != nil {
			panic(err)
		}
	}
	return r
}

// AddModifier adds a fixed delta to one integer attribute and leaves every
// other attribute untouched.
type AddModifier struct {
	Attr  facet.AttrID
	Delta int
}

func (m AddModifier) Modify(attr facet.AttrID, value any) any {
	if attr != m.Attr {
		return value
	}
	if v, ok := value.(int); ok {
		return v + m.Delta
	}
	return value
}
