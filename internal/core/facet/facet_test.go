package facet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func defineEmpty(t *testing.T, name string, iface *Interface) *Implementation {
	t.Helper()
	impl, err := Define(Definition{Name: name, Interface: iface})
	require.NoError(t, err)
	return impl
}

func newEntity(t *testing.T, name string, factories ...*Factory) *Entity {
	t.Helper()
	typ, err := NewType(name, factories...)
	require.NoError(t, err)
	e, err := typ.New()
	require.NoError(t, err)
	return e
}

func TestAttributeRoundTrip(t *testing.T) {
	iface := NewInterface("stats")
	power := Stored[int](iface, "power")
	impl := defineEmpty(t, "stats-impl", iface)

	e := newEntity(t, "dummy", impl.Configure(nil))
	power.Set(e, 42)
	require.Equal(t, 42, power.Get(e))
	power.Set(e, -1)
	require.Equal(t, -1, power.Get(e))
}

func TestAttributeNameNonCollision(t *testing.T) {
	i1 := NewInterface("first")
	i2 := NewInterface("second")
	v1 := Stored[int](i1, "value")
	v2 := Stored[int](i2, "value")
	impl1 := defineEmpty(t, "first-impl", i1)
	impl2 := defineEmpty(t, "second-impl", i2)

	e := newEntity(t, "both", impl1.Configure(nil), impl2.Configure(nil))
	v1.Set(e, 7)
	v2.Set(e, 99)
	require.Equal(t, 7, v1.Get(e))
	require.Equal(t, 99, v2.Get(e))
}

func TestConfigureIsPure(t *testing.T) {
	iface := NewInterface("pure")
	level := Stored[int](iface, "level")
	initCount := 0
	impl, err := Define(Definition{
		Name:      "pure-impl",
		Interface: iface,
		Init: func(inst *Instance, args Args) error {
			initCount++
			n, err := Arg[int](args, "level")
			if err != nil {
				return err
			}
			level.Set(inst.Entity(), n)
			return nil
		},
	})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		impl.Configure(Args{"level": i})
	}
	require.Zero(t, initCount, "capturing arguments must not run the constructor")

	e := newEntity(t, "leveled", impl.Configure(Args{"level": 3}))
	require.Equal(t, 1, initCount)
	require.Equal(t, 3, level.Get(e))
}

func TestInitEntityRunsOnce(t *testing.T) {
	iface := NewInterface("once")
	hits := Stored[int](iface, "hits")
	impl, err := Define(Definition{
		Name:      "once-impl",
		Interface: iface,
		Init: func(inst *Instance, _ Args) error {
			hits.Set(inst.Entity(), 1)
			return nil
		},
	})
	require.NoError(t, err)

	f := impl.Configure(nil)
	e := newEntity(t, "guarded", f)
	require.Equal(t, 1, hits.Get(e))

	err = f.InitEntity(e)
	require.Error(t, err, "second application of the factory must be rejected")
}

func TestLazyArgValidation(t *testing.T) {
	iface := NewInterface("lazy")
	_ = Stored[int](iface, "n")
	impl, err := Define(Definition{
		Name:      "lazy-impl",
		Interface: iface,
		Init: func(_ *Instance, args Args) error {
			_, err := Arg[int](args, "n")
			return err
		},
	})
	require.NoError(t, err)

	// Bad arguments are accepted at capture and rejected at application.
	f := impl.Configure(Args{"n": "not a number"})
	typ, err := NewType("broken", f)
	require.NoError(t, err)
	_, err = typ.New()
	require.Error(t, err)
}

func TestDefineRejectsStoredRedeclaration(t *testing.T) {
	iface := NewInterface("strict")
	_ = Stored[int](iface, "hp")
	_, err := Define(Definition{
		Name:      "strict-impl",
		Interface: iface,
		Computed: map[string]Provider{
			"hp": func(*Instance) any { return 0 },
		},
	})
	require.ErrorContains(t, err, "redeclares stored attribute")
}

func TestDefineRequiresComputedProviders(t *testing.T) {
	iface := NewInterface("needy")
	Computed(iface, "derived")

	_, err := Define(Definition{Name: "needy-impl", Interface: iface})
	require.ErrorContains(t, err, "misses provider")

	_, err = Define(Definition{
		Name:      "needy-impl",
		Interface: iface,
		Computed: map[string]Provider{
			"derived":  func(*Instance) any { return 1 },
			"invented": func(*Instance) any { return 2 },
		},
	})
	require.ErrorContains(t, err, "not declared")
}

func TestDefineRequiresInterface(t *testing.T) {
	_, err := Define(Definition{Name: "floating"})
	require.ErrorContains(t, err, "declares no interface")
}

func TestDispatchSpecificity(t *testing.T) {
	base := NewKind("base", nil)
	derived := NewKind("derived", base)

	var order []string
	iface := NewInterface("listener")
	impl, err := Define(Definition{
		Name:      "listener-impl",
		Interface: iface,
		Handlers: []HandlerDecl{
			On(func(_ *Instance, _ Event) error {
				order = append(order, "base")
				return nil
			}, base),
			On(func(_ *Instance, _ Event) error {
				order = append(order, "derived")
				return nil
			}, derived),
		},
	})
	require.NoError(t, err)

	e := newEntity(t, "listening", impl.Configure(nil))
	ev := &Base{kind: derived}
	require.NoError(t, e.Handle(ev))
	require.Equal(t, []string{"derived", "base"}, order,
		"handlers for the precise kind must run before ancestor handlers")
}

func TestDispatchDeclarationOrder(t *testing.T) {
	kind := NewKind("tick", nil)

	var order []int
	iface := NewInterface("ordered")
	impl, err := Define(Definition{
		Name:      "ordered-impl",
		Interface: iface,
		Handlers: []HandlerDecl{
			On(func(_ *Instance, _ Event) error { order = append(order, 1); return nil }, kind),
			On(func(_ *Instance, _ Event) error { order = append(order, 2); return nil }, kind),
			On(func(_ *Instance, _ Event) error { order = append(order, 3); return nil }, kind),
		},
	})
	require.NoError(t, err)

	e := newEntity(t, "ticking", impl.Configure(nil))
	for i := 0; i < 5; i++ {
		order = order[:0]
		require.NoError(t, e.Handle(&Base{kind: kind}))
		require.Equal(t, []int{1, 2, 3}, order)
	}
}

func TestDispatchMultiKindHandler(t *testing.T) {
	a := NewKind("alpha", nil)
	b := NewKind("beta", nil)

	count := 0
	iface := NewInterface("multi")
	impl, err := Define(Definition{
		Name:      "multi-impl",
		Interface: iface,
		Handlers: []HandlerDecl{
			On(func(_ *Instance, _ Event) error { count++; return nil }, a, b),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, impl.HandlerCount(a))
	require.Equal(t, 1, impl.HandlerCount(b))
	require.Zero(t, impl.HandlerCount(NewKind("gamma", nil)))

	e := newEntity(t, "bimodal", impl.Configure(nil))
	require.NoError(t, e.Handle(&Base{kind: a}))
	require.NoError(t, e.Handle(&Base{kind: b}))
	require.Equal(t, 2, count)
}

func TestDispatchAbortsOnHandlerError(t *testing.T) {
	kind := NewKind("boom", nil)
	boom := errors.New("boom")

	ran := 0
	iface := NewInterface("fragile")
	impl, err := Define(Definition{
		Name:      "fragile-impl",
		Interface: iface,
		Handlers: []HandlerDecl{
			On(func(_ *Instance, _ Event) error { return boom }, kind),
			On(func(_ *Instance, _ Event) error { ran++; return nil }, kind),
		},
	})
	require.NoError(t, err)

	e := newEntity(t, "breaking", impl.Configure(nil))
	err = e.Handle(&Base{kind: kind})
	require.ErrorIs(t, err, boom)
	require.Zero(t, ran, "dispatch must stop at the first failing handler")
}

func TestExtendsInheritsInterfaceAndInit(t *testing.T) {
	iface := NewInterface("heritage")
	label := Stored[string](iface, "label")
	parent, err := Define(Definition{
		Name:      "parent",
		Interface: iface,
		Init: func(inst *Instance, args Args) error {
			s, err := Arg[string](args, "label")
			if err != nil {
				return err
			}
			label.Set(inst.Entity(), s)
			return nil
		},
	})
	require.NoError(t, err)

	kind := NewKind("poke", nil)
	poked := false
	child, err := Define(Definition{
		Name:    "child",
		Extends: parent,
		Handlers: []HandlerDecl{
			On(func(_ *Instance, _ Event) error { poked = true; return nil }, kind),
		},
	})
	require.NoError(t, err)
	require.Same(t, iface, child.Interface())

	e := newEntity(t, "descendant", child.Configure(Args{"label": "x"}))
	require.Equal(t, "x", label.Get(e))
	require.NoError(t, e.Handle(&Base{kind: kind}))
	require.True(t, poked)
}

func TestTypeRejectsDuplicateInterface(t *testing.T) {
	iface := NewInterface("solo")
	impl := defineEmpty(t, "solo-impl", iface)

	_, err := NewType("twice", impl.Configure(nil), impl.Configure(nil))
	require.ErrorContains(t, err, "installs interface")
}

func TestComponentAdaptsByInterface(t *testing.T) {
	iface := NewInterface("findable")
	other := NewInterface("absent")
	defineEmpty(t, "absent-impl", other)
	impl := defineEmpty(t, "findable-impl", iface)

	e := newEntity(t, "found", impl.Configure(nil))
	inst, err := e.Component(iface)
	require.NoError(t, err)
	require.Same(t, e, inst.Entity())
	require.Same(t, impl, inst.Implementation())

	_, err = e.Component(other)
	require.Error(t, err)
}

func TestKindLineage(t *testing.T) {
	root := NewKind("root", nil)
	mid := NewKind("mid", root)
	leaf := NewKind("leaf", mid)

	require.Equal(t, []*Kind{leaf, mid, root}, leaf.Lineage())
	require.True(t, leaf.Is(root))
	require.True(t, leaf.Is(leaf))
	require.False(t, root.Is(leaf))
}
