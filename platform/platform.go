// Package platform describes the target a type graph is laid out for: its
// architecture, word size and byte order.
package platform

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"

	"ctypegraph/ctype"
	"ctypegraph/internal/common"
)

// Arch identifies a processor architecture.
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
	ArchAArch64
	ArchPPC64
)

var archNames = map[Arch]string{
	ArchUnknown: common.UnknownStr,
	ArchX86_64:  "x86_64",
	ArchAArch64: "aarch64",
	ArchPPC64:   "ppc64",
}

// String returns the conventional name of the architecture.
func (a Arch) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}

	return "Arch(" + strconv.Itoa(int(a)) + ")"
}

// ParseArch maps an architecture name, or a Go GOARCH value, to an Arch.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86_64", "x86-64", "amd64":
		return ArchX86_64, nil
	case "aarch64", "arm64":
		return ArchAArch64, nil
	case "ppc64", "ppc64le", "powerpc64":
		return ArchPPC64, nil
	case common.UnknownStr, "":
		return ArchUnknown, nil
	default:
		return ArchUnknown, fmt.Errorf("%w: invalid architecture %q", ctype.ErrInvalidArgument, s)
	}
}

// Flags are properties of a platform.
type Flags uint32

const (
	Is64Bit Flags = 1 << iota
	IsLittleEndian

	AllFlags = Is64Bit | IsLittleEndian
	// DefaultFlags asks New for the architecture's usual flags.
	DefaultFlags Flags = ^Flags(0)
)

// String renders the set as "64bit|little_endian", or "none".
func (f Flags) String() string {
	if f == DefaultFlags {
		return "default"
	}

	var parts []string
	if f&Is64Bit != 0 {
		parts = append(parts, "64bit")
	}

	if f&IsLittleEndian != 0 {
		parts = append(parts, "little_endian")
	}

	if rest := f &^ AllFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// ParseFlag maps a flag name as produced by Flags.String to its bit.
func ParseFlag(s string) (Flags, error) {
	switch strings.ToLower(s) {
	case "64bit", "is_64_bit":
		return Is64Bit, nil
	case "little_endian", "is_little_endian":
		return IsLittleEndian, nil
	default:
		return 0, fmt.Errorf("%w: invalid platform flag %q", ctype.ErrInvalidArgument, s)
	}
}

var defaultFlags = map[Arch]Flags{
	ArchX86_64:  Is64Bit | IsLittleEndian,
	ArchAArch64: Is64Bit | IsLittleEndian,
	ArchPPC64:   Is64Bit | IsLittleEndian,
}

// Platform is an architecture together with its flags. The zero value is an
// unknown 32-bit big-endian platform.
type Platform struct {
	arch  Arch
	flags Flags
}

// New validates arch and flags. DefaultFlags selects the usual flags of the
// architecture, which an unknown architecture does not have.
func New(arch Arch, flags Flags) (Platform, error) {
	if _, ok := archNames[arch]; !ok {
		return Platform{}, fmt.Errorf("%w: invalid architecture", ctype.ErrInvalidArgument)
	}

	if flags == DefaultFlags {
		if arch == ArchUnknown {
			return Platform{}, fmt.Errorf("%w: cannot get default platform flags of unknown architecture",
				ctype.ErrInvalidArgument)
		}

		flags = defaultFlags[arch]
	} else if flags&^AllFlags != 0 {
		return Platform{}, fmt.Errorf("%w: invalid platform flags", ctype.ErrInvalidArgument)
	}

	return Platform{arch: arch, flags: flags}, nil
}

// Host describes the machine the program runs on.
func Host() Platform {
	arch, err := ParseArch(runtime.GOARCH)
	if err != nil {
		arch = ArchUnknown
	}

	var flags Flags
	if strconv.IntSize == 64 {
		flags |= Is64Bit
	}

	if !cpu.IsBigEndian {
		flags |= IsLittleEndian
	}

	return Platform{arch: arch, flags: flags}
}

func (p Platform) Arch() Arch {
	return p.arch
}

func (p Platform) Flags() Flags {
	return p.flags
}

func (p Platform) Is64Bit() bool {
	return p.flags&Is64Bit != 0
}

func (p Platform) IsLittleEndian() bool {
	return p.flags&IsLittleEndian != 0
}

// WordSize returns the size of a pointer in bytes.
func (p Platform) WordSize() uint64 {
	if p.Is64Bit() {
		return 8
	}

	return 4
}

func (p Platform) Equal(other Platform) bool {
	return p.arch == other.arch && p.flags == other.flags
}

func (p Platform) String() string {
	return p.arch.String() + " (" + p.flags.String() + ")"
}
