// SPDX-License-Identifier: EPL-2.0

package dda

import "fmt"

// Kind is the layout of a record.
type Kind uint8

const (
	Regular Kind = iota
	Extended
)

const (
	// RegularSize is the length in bytes of a regular record.
	RegularSize = 31
	// ExtendedSize is the length in bytes of an extended record.
	ExtendedSize = 36

	// every extendedEvery-th record (the last of each group) is extended
	extendedEvery = 10
)

func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Size returns the record length for k, or 0 for an unknown kind.
func (k Kind) Size() int {
	switch k {
	case Regular:
		return RegularSize
	case Extended:
		return ExtendedSize
	default:
		return 0
	}
}

// Frame returns the kind and byte length of the record at zero-based
// position index. The kind depends on position only, never on content.
func Frame(index int) (Kind, int) {
	if index%extendedEvery == extendedEvery-1 {
		return Extended, ExtendedSize
	}
	return Regular, RegularSize
}
