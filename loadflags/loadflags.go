// Package loadflags implements the bit-flag vocabulary the MegaScript host
// API uses to request partial loading of nested entity data.
//
// Each parent entity (job metadata, order, product, product variant) owns a
// flag family: a set of named flags whose bit positions are unique within the
// family. Callers OR flags together and pass the resulting set to a load
// call; the host populates only the nested data whose flag is present.
//
// Families are declared as tables of members rather than hand-computed
// decimal constants, and every table is validated at construction time so a
// typo cannot silently alias two flags onto the same bit.
package loadflags

import (
	"errors"
	"fmt"
	"strings"
)

// Flags is a bitmask over the optional sub-resources of one parent entity.
// Values are immutable; callers build new sets with Combine.
type Flags uint64

// None requests no nested data at all.
const None Flags = 0

// maxBit is the highest bit position a member may claim.
const maxBit = 63

// Combine returns the bitwise OR of any number of flags.
// Combining nothing yields None.
func Combine(flags ...Flags) Flags {
	var set Flags
	for _, f := range flags {
		set |= f
	}
	return set
}

// Contains reports whether every bit of other is present in f. This is a
// subset test, not equality: a set holding several flags still answers true
// for each one individually.
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Family construction errors.
var (
	ErrNoMembers         = errors.New("loadflags: family declares no members")
	ErrNoBase            = errors.New("loadflags: first member must be the base")
	ErrMultipleBase      = errors.New("loadflags: family declares more than one base")
	ErrDuplicateName     = errors.New("loadflags: duplicate flag name")
	ErrBitCollision      = errors.New("loadflags: bit already assigned")
	ErrBitOutOfRange     = errors.New("loadflags: bit out of range")
	ErrUnknownDependency = errors.New("loadflags: unknown dependency")
	ErrReservedName      = errors.New("loadflags: reserved flag name")
	ErrUnknownFlag       = errors.New("loadflags: unknown flag")
)

// Member declares one named flag of a family.
type Member struct {
	name     string
	bit      uint
	base     bool
	requires []string
}

// Base declares the family's universal base member. Every other member of
// the family implicitly includes the base bit, so a caller can never request
// nested data without also loading the parent record's identity.
func Base(name string, bit uint) Member {
	return Member{name: name, bit: bit, base: true}
}

// Flag declares a plain member: the base bit plus one fresh bit.
func Flag(name string, bit uint) Member {
	return Member{name: name, bit: bit}
}

// Composite declares a member whose value is the OR of previously declared
// members plus exactly one fresh bit. Requesting a composite implicitly
// requests each of its dependencies.
func Composite(name string, bit uint, requires ...string) Member {
	return Member{name: name, bit: bit, requires: requires}
}

// Family is a validated, immutable table of named flags for one parent
// entity.
type Family struct {
	name  string
	base  Flags
	order []string
	flags map[string]Flags
	all   Flags
}

// NewFamily builds and validates a flag family. The first member must be the
// base. Names must be unique and may not shadow the None/All sentinels; bits
// must be unique within the family; composite dependencies must name earlier
// members.
func NewFamily(name string, members ...Member) (*Family, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMembers, name)
	}
	if !members[0].base {
		return nil, fmt.Errorf("%w: %s", ErrNoBase, name)
	}

	fam := &Family{
		name:  name,
		order: make([]string, 0, len(members)),
		flags: make(map[string]Flags, len(members)),
	}
	usedBits := Flags(0)

	for i, m := range members {
		if m.base && i > 0 {
			return nil, fmt.Errorf("%w: %s.%s", ErrMultipleBase, name, m.name)
		}
		if m.name == "" || m.name == "None" || m.name == "All" {
			return nil, fmt.Errorf("%w: %s.%q", ErrReservedName, name, m.name)
		}
		if _, ok := fam.flags[m.name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateName, name, m.name)
		}
		if m.bit > maxBit {
			return nil, fmt.Errorf("%w: %s.%s (bit %d)", ErrBitOutOfRange, name, m.name, m.bit)
		}

		fresh := Flags(1) << m.bit
		if usedBits&fresh != 0 {
			return nil, fmt.Errorf("%w: %s.%s (bit %d)", ErrBitCollision, name, m.name, m.bit)
		}
		usedBits |= fresh

		value := fam.base | fresh
		for _, dep := range m.requires {
			depValue, ok := fam.flags[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s requires %q", ErrUnknownDependency, name, m.name, dep)
			}
			value |= depValue
		}

		if m.base {
			fam.base = fresh
		}
		fam.order = append(fam.order, m.name)
		fam.flags[m.name] = value
		fam.all |= value
	}

	return fam, nil
}

// MustNewFamily is NewFamily that panics on an invalid table. Intended for
// package-level family declarations, where a bad table is a programming
// error.
func MustNewFamily(name string, members ...Member) *Family {
	fam, err := NewFamily(name, members...)
	if err != nil {
		panic(err)
	}
	return fam
}

// Name returns the family name.
func (fam *Family) Name() string {
	return fam.name
}

// Base returns the universal base flag of the family.
func (fam *Family) Base() Flags {
	return fam.base
}

// All returns the OR of every named member. It deliberately covers only
// declared flags, never unallocated bits, so growing a family later cannot
// retroactively change what an old "All" request meant.
func (fam *Family) All() Flags {
	return fam.all
}

// Get returns the named flag, or None when the name is unknown.
func (fam *Family) Get(name string) Flags {
	return fam.flags[name]
}

// Lookup returns the named flag and whether it is declared in the family.
func (fam *Family) Lookup(name string) (Flags, bool) {
	f, ok := fam.flags[name]
	return f, ok
}

// Names returns the member names in declaration order.
func (fam *Family) Names() []string {
	names := make([]string, len(fam.order))
	copy(names, fam.order)
	return names
}

// Describe returns the names of every member fully contained in set, in
// declaration order. Useful for logging what a raw set requests.
func (fam *Family) Describe(set Flags) []string {
	var names []string
	for _, name := range fam.order {
		if set.Contains(fam.flags[name]) {
			names = append(names, name)
		}
	}
	return names
}

// Parse combines the named flags into a set. "None" and "All" are accepted
// as sentinels; any other unknown name is an error.
func (fam *Family) Parse(names ...string) (Flags, error) {
	var set Flags
	for _, name := range names {
		switch name {
		case "None":
			continue
		case "All":
			set |= fam.all
			continue
		}
		f, ok := fam.flags[name]
		if !ok {
			return None, fmt.Errorf("%w: %s.%s", ErrUnknownFlag, fam.name, name)
		}
		set |= f
	}
	return set, nil
}

// Format renders a set as a pipe-joined list of member names, matching how
// callers write flag combinations in scripts. Unknown or empty sets render
// as "None".
func (fam *Family) Format(set Flags) string {
	if set == None {
		return "None"
	}
	names := fam.Describe(set)
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
