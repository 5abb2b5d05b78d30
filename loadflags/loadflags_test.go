package loadflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jobFamily mirrors the job metadata family layout used by the host API:
// Job = 2, Customer = Job|4 = 6, OrderProductVariant = Job|32 = 34,
// Tags = Job|OrderProductVariant|128 = 162.
func jobFamily(t *testing.T) *Family {
	t.Helper()
	fam, err := NewFamily("MetaDataToLoad",
		Base("Job", 1),
		Flag("Customer", 2),
		Flag("Order", 3),
		Flag("OrderProductVariant", 5),
		Flag("TemplateTexts", 6),
		Composite("Tags", 7, "OrderProductVariant"),
		Flag("CustomerAttributes", 8),
		Composite("CheckoutAttributes", 9, "CustomerAttributes", "TemplateTexts"),
	)
	require.NoError(t, err)
	return fam
}

func TestCombine(t *testing.T) {
	t.Run("no arguments yields None", func(t *testing.T) {
		assert.Equal(t, None, Combine())
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := Flags(6)
		assert.Equal(t, f, Combine(f, f))
	})

	t.Run("ors all arguments", func(t *testing.T) {
		assert.Equal(t, Flags(166), Combine(Flags(6), Flags(162)))
	})
}

func TestContains(t *testing.T) {
	t.Run("is a subset test, not equality", func(t *testing.T) {
		set := Combine(Flags(6), Flags(34))
		assert.True(t, set.Contains(Flags(6)))
		assert.True(t, set.Contains(Flags(34)))
		assert.False(t, Flags(6).Contains(set))
	})

	t.Run("None contains no non-zero flag", func(t *testing.T) {
		assert.False(t, None.Contains(Flags(2)))
	})

	t.Run("every set contains None", func(t *testing.T) {
		assert.True(t, None.Contains(None))
		assert.True(t, Flags(6).Contains(None))
	})
}

func TestNewFamilyValidation(t *testing.T) {
	t.Run("rejects empty family", func(t *testing.T) {
		_, err := NewFamily("Empty")
		assert.ErrorIs(t, err, ErrNoMembers)
	})

	t.Run("rejects family without leading base", func(t *testing.T) {
		_, err := NewFamily("NoBase", Flag("Customer", 2))
		assert.ErrorIs(t, err, ErrNoBase)
	})

	t.Run("rejects second base", func(t *testing.T) {
		_, err := NewFamily("TwoBases", Base("Job", 1), Base("Other", 2))
		assert.ErrorIs(t, err, ErrMultipleBase)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewFamily("Dup", Base("Job", 1), Flag("Customer", 2), Flag("Customer", 3))
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("rejects bit collisions", func(t *testing.T) {
		_, err := NewFamily("Alias", Base("Job", 1), Flag("Customer", 2), Flag("Order", 2))
		assert.ErrorIs(t, err, ErrBitCollision)
	})

	t.Run("rejects bits beyond 63", func(t *testing.T) {
		_, err := NewFamily("Wide", Base("Job", 1), Flag("Customer", 64))
		assert.ErrorIs(t, err, ErrBitOutOfRange)
	})

	t.Run("rejects unknown dependencies", func(t *testing.T) {
		_, err := NewFamily("Missing", Base("Job", 1), Composite("Tags", 7, "OrderProductVariant"))
		assert.ErrorIs(t, err, ErrUnknownDependency)
	})

	t.Run("rejects forward dependencies", func(t *testing.T) {
		_, err := NewFamily("Forward",
			Base("Job", 1),
			Composite("Tags", 7, "OrderProductVariant"),
			Flag("OrderProductVariant", 5),
		)
		assert.ErrorIs(t, err, ErrUnknownDependency)
	})

	t.Run("rejects reserved names", func(t *testing.T) {
		_, err := NewFamily("Reserved", Base("Job", 1), Flag("All", 2))
		assert.ErrorIs(t, err, ErrReservedName)

		_, err = NewFamily("Reserved", Base("Job", 1), Flag("None", 2))
		assert.ErrorIs(t, err, ErrReservedName)
	})
}

func TestMustNewFamily(t *testing.T) {
	t.Run("panics on invalid table", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewFamily("Bad", Flag("Customer", 2))
		})
	})

	t.Run("returns family for valid table", func(t *testing.T) {
		assert.NotPanics(t, func() {
			MustNewFamily("Good", Base("Job", 1))
		})
	})
}

func TestFamilyValues(t *testing.T) {
	fam := jobFamily(t)

	t.Run("documented decimal layout", func(t *testing.T) {
		assert.Equal(t, Flags(2), fam.Get("Job"))
		assert.Equal(t, Flags(6), fam.Get("Customer"))
		assert.Equal(t, Flags(34), fam.Get("OrderProductVariant"))
		assert.Equal(t, Flags(162), fam.Get("Tags"))
	})

	t.Run("every member includes the base", func(t *testing.T) {
		for _, name := range fam.Names() {
			assert.True(t, fam.Get(name).Contains(fam.Base()), "flag %s must include base", name)
		}
	})

	t.Run("plain members share no bits beyond the base", func(t *testing.T) {
		plain := []string{"Customer", "Order", "OrderProductVariant", "TemplateTexts", "CustomerAttributes"}
		for i, a := range plain {
			for _, b := range plain[i+1:] {
				overlap := fam.Get(a) & fam.Get(b)
				assert.Equal(t, fam.Base(), overlap, "flags %s and %s overlap beyond the base", a, b)
			}
		}
	})

	t.Run("composites contain their dependencies", func(t *testing.T) {
		tags := fam.Get("Tags")
		assert.True(t, tags.Contains(fam.Get("OrderProductVariant")))

		checkout := fam.Get("CheckoutAttributes")
		assert.True(t, checkout.Contains(fam.Get("CustomerAttributes")))
		assert.True(t, checkout.Contains(fam.Get("TemplateTexts")))
	})

	t.Run("composite does not contain unrelated flags", func(t *testing.T) {
		// Tags = Job|OrderProductVariant|128; Customer's own bit 4 is absent.
		assert.False(t, fam.Get("Tags").Contains(fam.Get("Customer")))
	})

	t.Run("combined sets answer for each part", func(t *testing.T) {
		set := Combine(fam.Get("Customer"), fam.Get("Tags"))
		assert.Equal(t, Flags(166), set)
		assert.True(t, set.Contains(fam.Get("Job")))
		assert.True(t, set.Contains(fam.Get("Customer")))
		assert.True(t, set.Contains(fam.Get("Tags")))
		assert.False(t, set.Contains(fam.Get("Order")))
	})
}

func TestFamilyAll(t *testing.T) {
	fam := jobFamily(t)

	t.Run("contains every named member", func(t *testing.T) {
		for _, name := range fam.Names() {
			assert.True(t, fam.All().Contains(fam.Get(name)), "All must contain %s", name)
		}
	})

	t.Run("covers only declared bits", func(t *testing.T) {
		var declared Flags
		for _, name := range fam.Names() {
			declared |= fam.Get(name)
		}
		assert.Equal(t, declared, fam.All())
	})
}

func TestFamilyLookup(t *testing.T) {
	fam := jobFamily(t)

	t.Run("Get returns None for unknown names", func(t *testing.T) {
		assert.Equal(t, None, fam.Get("Nope"))
	})

	t.Run("Lookup reports membership", func(t *testing.T) {
		f, ok := fam.Lookup("Customer")
		assert.True(t, ok)
		assert.Equal(t, Flags(6), f)

		_, ok = fam.Lookup("Nope")
		assert.False(t, ok)
	})

	t.Run("Names preserves declaration order", func(t *testing.T) {
		names := fam.Names()
		require.NotEmpty(t, names)
		assert.Equal(t, "Job", names[0])
		assert.Equal(t, "Customer", names[1])
	})
}

func TestFamilyDescribe(t *testing.T) {
	fam := jobFamily(t)

	t.Run("lists fully contained members", func(t *testing.T) {
		set := Combine(fam.Get("Customer"), fam.Get("Tags"))
		assert.Equal(t, []string{"Job", "Customer", "OrderProductVariant", "Tags"}, fam.Describe(set))
	})

	t.Run("empty set describes nothing", func(t *testing.T) {
		assert.Empty(t, fam.Describe(None))
	})
}

func TestFamilyParse(t *testing.T) {
	fam := jobFamily(t)

	t.Run("combines named flags", func(t *testing.T) {
		set, err := fam.Parse("Customer", "Tags")
		require.NoError(t, err)
		assert.Equal(t, Flags(166), set)
	})

	t.Run("accepts sentinels", func(t *testing.T) {
		set, err := fam.Parse("None")
		require.NoError(t, err)
		assert.Equal(t, None, set)

		set, err = fam.Parse("All")
		require.NoError(t, err)
		assert.Equal(t, fam.All(), set)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := fam.Parse("Customer", "Nope")
		assert.ErrorIs(t, err, ErrUnknownFlag)
	})
}

func TestFamilyFormat(t *testing.T) {
	fam := jobFamily(t)

	assert.Equal(t, "None", fam.Format(None))
	assert.Equal(t, "Job", fam.Format(fam.Get("Job")))
	assert.Equal(t, "Job|Customer", fam.Format(fam.Get("Customer")))
	assert.Equal(t, "Job|OrderProductVariant|Tags", fam.Format(fam.Get("Tags")))
}
