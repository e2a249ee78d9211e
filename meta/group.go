package meta

import "fmt"

// Group identifies a slot family in a Register. Singleton groups hold one
// value. Collection groups hold values keyed by name.
type Group int

const (
	// DefaultConstructorArchetype is called for a bare "(...)".
	DefaultConstructorArchetype Group = iota + 1
	// DefaultIndexerArchetype is indexed by a bare "[...]".
	DefaultIndexerArchetype
	// PrefixOperator holds operators applied before their operand.
	PrefixOperator
	// InfixOperator holds operators placed between two operands.
	InfixOperator
	// PostfixOperator holds operators applied after their operand.
	PostfixOperator
	// Shape is scratch space for named values written by directives.
	Shape
)

var groupNames = map[Group]string{
	DefaultConstructorArchetype: "defaultConstructorArchetype",
	DefaultIndexerArchetype:     "defaultIndexerArchetype",
	PrefixOperator:              "prefixOperator",
	InfixOperator:               "infixOperator",
	PostfixOperator:             "postfixOperator",
	Shape:                       "shape",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// IsCollection returns true for groups that hold named values.
func (g Group) IsCollection() bool {
	switch g {
	case PrefixOperator, InfixOperator, PostfixOperator, Shape:
		return true
	}
	return false
}

// Slot addresses either a singleton group or one named entry of a
// collection group. Use Key or CollectionKey to build one.
type Slot struct {
	group Group
	name  string
}

// Key returns the slot of a singleton group. It panics if group is a
// collection group.
func Key(group Group) Slot {
	if group.IsCollection() {
		panic(fmt.Sprintf("meta: %s is a collection group, use CollectionKey", group))
	}
	return Slot{group: group}
}

// CollectionKey returns the slot of the entry called name in a collection
// group. It panics if group is a singleton group.
func CollectionKey(group Group, name string) Slot {
	if !group.IsCollection() {
		panic(fmt.Sprintf("meta: %s is a singleton group, use Key", group))
	}
	return Slot{group: group, name: name}
}

// Group returns the group the slot belongs to.
func (s Slot) Group() Group { return s.group }

// Name returns the entry name of a collection slot.
func (s Slot) Name() string { return s.name }

func (s Slot) String() string {
	if s.group.IsCollection() {
		return fmt.Sprintf("%s[%q]", s.group, s.name)
	}
	return s.group.String()
}
