package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/core/world"
	"github.com/gridforge/gridforge/internal/game/components"
	"github.com/gridforge/gridforge/internal/game/events"
)

const catalogYAML = `
types:
  - name: wall
    components:
      - name: solid
  - name: newt
    components:
      - name: solid
      - name: combatant
        args:
          health: 10
          strength: 3
      - name: generic-ai
  - name: leather-armor
    components:
      - name: equipment
      - name: portable
    modifiers:
      - attribute: combatant.strength
        add: 5
`

func load(t *testing.T, src string) *Catalog {
	t.Helper()
	catalog := NewCatalog()
	loader := NewLoader(Default(), nil)
	require.NoError(t, loader.Load(strings.NewReader(src), catalog))
	return catalog
}

func TestLoadBuildsTypes(t *testing.T) {
	catalog := load(t, catalogYAML)
	require.Equal(t, []string{"leather-armor", "newt", "wall"}, catalog.Names())

	newtType, ok := catalog.Type("newt")
	require.True(t, ok)
	require.True(t, newtType.Implements(components.Combatant))
	require.True(t, newtType.Implements(components.Physics))
	require.True(t, newtType.Implements(components.Actor))

	newt, err := newtType.New()
	require.NoError(t, err)
	require.Equal(t, 10, components.Health.Get(newt))
	require.Equal(t, 3, components.Strength.Get(newt))
}

func TestLoadedModifiersApply(t *testing.T) {
	catalog := load(t, catalogYAML)
	newt := mustBuild(t, catalog, "newt")
	armor := mustBuild(t, catalog, "leather-armor")

	w := world.New(nil, world.NewGrid(1, 1))
	w.Enqueue(events.NewEquip(w, newt, armor))
	require.NoError(t, w.Drain())
	require.Equal(t, 8, components.Strength.Get(newt))
	require.Equal(t, 3, components.Strength.Raw(newt))
}

func mustBuild(t *testing.T, catalog *Catalog, name string) *facet.Entity {
	t.Helper()
	typ, ok := catalog.Type(name)
	require.True(t, ok)
	e, err := typ.New()
	require.NoError(t, err)
	return e
}

func TestTypeByID(t *testing.T) {
	catalog := load(t, catalogYAML)
	byID, ok := catalog.TypeByID(TypeID("wall"))
	require.True(t, ok)
	byName, _ := catalog.Type("wall")
	require.Same(t, byName, byID)

	_, ok = catalog.TypeByID(TypeID("no-such-type"))
	require.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"unnamed type": {
			src:  "types:\n  - components:\n      - name: solid\n",
			want: "without a name",
		},
		"no components": {
			src:  "types:\n  - name: ghost\n",
			want: "installs no components",
		},
		"unknown component": {
			src:  "types:\n  - name: slime\n    components:\n      - name: gelatinous\n",
			want: `unknown component "gelatinous"`,
		},
		"unknown attribute": {
			src: "types:\n  - name: ring\n    components:\n      - name: equipment\n" +
				"    modifiers:\n      - attribute: combatant.luck\n        add: 1\n",
			want: `unknown attribute "combatant.luck"`,
		},
		"duplicate type": {
			src: "types:\n  - name: wall\n    components:\n      - name: solid\n" +
				"  - name: wall\n    components:\n      - name: solid\n",
			want: `type "wall" defined twice`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			loader := NewLoader(Default(), nil)
			err := loader.Load(strings.NewReader(tc.src), NewCatalog())
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	terrain := "types:\n  - name: wall\n    components:\n      - name: solid\n"
	creatures := "types:\n  - name: newt\n    components:\n      - name: combatant\n" +
		"        args: {health: 10, strength: 3}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terrain.yaml"), []byte(terrain), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "creatures.yml"), []byte(creatures), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	catalog := NewCatalog()
	loader := NewLoader(Default(), nil)
	require.NoError(t, loader.LoadDir(dir, catalog))
	require.Equal(t, []string{"newt", "wall"}, catalog.Names())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(components.Solid))
	require.ErrorContains(t, r.Register(components.Solid), "registered twice")
}

func TestRegistryIndexesStoredAttributes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(components.CombatantImpl))

	id, ok := r.Attribute("combatant.strength")
	require.True(t, ok)
	require.Equal(t, components.Strength.ID(), id)

	_, ok = r.Attribute("combatant.luck")
	require.False(t, ok)
}
