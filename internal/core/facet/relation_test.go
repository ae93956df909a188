package facet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRelateRegistersBothSides(t *testing.T) {
	wields := NewRelationKind("wields")
	iface := NewInterface("thing")
	impl := defineEmpty(t, "thing-impl", iface)

	holder := newEntity(t, "holder", impl.Configure(nil))
	sword := newEntity(t, "sword", impl.Configure(nil))

	rel := Relate(wields, holder, sword)
	require.Same(t, holder, rel.Subject())
	require.Same(t, sword, rel.Object())
	require.NotEqual(t, uuid.Nil, rel.ID())
	require.Equal(t, []*Relation{rel}, holder.Relations(wields))
	require.Equal(t, []*Relation{rel}, sword.Relations(wields))

	rel.Destroy()
	require.True(t, rel.Destroyed())
	require.Empty(t, holder.Relations(wields))
	require.Empty(t, sword.Relations(wields))

	// Destroying twice is a no-op.
	rel.Destroy()
	require.Empty(t, holder.Relations(wields))
}

func TestRelationsKeepCreationOrder(t *testing.T) {
	carries := NewRelationKind("carries")
	iface := NewInterface("cargo")
	impl := defineEmpty(t, "cargo-impl", iface)

	mule := newEntity(t, "mule", impl.Configure(nil))
	first := Relate(carries, mule, newEntity(t, "crate", impl.Configure(nil)))
	second := Relate(carries, mule, newEntity(t, "barrel", impl.Configure(nil)))
	third := Relate(carries, mule, newEntity(t, "sack", impl.Configure(nil)))

	require.Equal(t, []*Relation{first, second, third}, mule.Relations(carries))
	require.NotEqual(t, first.ID(), second.ID())

	second.Destroy()
	require.Equal(t, []*Relation{first, third}, mule.Relations(carries))
}

func TestModifiersReachTheSubjectOnly(t *testing.T) {
	wears := NewRelationKind("wears-test")
	iface := NewInterface("body")
	vigor := Stored[int](iface, "vigor")
	impl := defineEmpty(t, "body-impl", iface)

	boost := ModifierFunc(func(attr AttrID, value any) any {
		if attr != vigor.ID() {
			return value
		}
		return value.(int) + 5
	})

	wearerType := MustNewType("wearer", impl.Configure(nil))
	armorType := MustNewType("armor", impl.Configure(nil)).WithModifiers(boost)

	wearer := wearerType.MustNew()
	armor := armorType.MustNew()
	vigor.Set(wearer, 10)
	vigor.Set(armor, 1)

	rel := Relate(wears, wearer, armor)
	require.Equal(t, 15, vigor.Get(wearer), "the worn object modifies its wearer")
	require.Equal(t, 10, vigor.Raw(wearer), "the raw value stays untouched")
	require.Equal(t, 1, vigor.Get(armor), "the object does not modify itself")

	rel.Destroy()
	require.Equal(t, 10, vigor.Get(wearer))
}

func TestModifiersStack(t *testing.T) {
	wears := NewRelationKind("wears-stack")
	iface := NewInterface("frame")
	bulk := Stored[int](iface, "bulk")
	impl := defineEmpty(t, "frame-impl", iface)

	add := func(n int) Modifier {
		return ModifierFunc(func(attr AttrID, value any) any {
			if attr != bulk.ID() {
				return value
			}
			return value.(int) + n
		})
	}

	wearer := MustNewType("stacked-wearer", impl.Configure(nil)).MustNew()
	bulk.Set(wearer, 1)
	Relate(wears, wearer, MustNewType("plate", impl.Configure(nil)).WithModifiers(add(2)).MustNew())
	Relate(wears, wearer, MustNewType("cloak", impl.Configure(nil)).WithModifiers(add(3), add(4)).MustNew())

	require.Equal(t, 10, bulk.Get(wearer))
}

func TestReadBeforeInitPanics(t *testing.T) {
	iface := NewInterface("vacant")
	slot := Stored[int](iface, "slot")
	impl := defineEmpty(t, "vacant-impl", iface)

	e := newEntity(t, "hollow", impl.Configure(nil))
	require.Panics(t, func() { slot.Get(e) })
}
