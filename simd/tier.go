package simd

import "strings"

// Tier is a bitmask identifying one or more capability tiers: a coherent
// bundle of CPU instruction-set extensions that enables a family of
// kernels. The numeric values are part of the stable ABI (external
// interface contract, §6) and must never change.
type Tier uint32

const (
	TierSerial   Tier = 1 << 0  // portable scalar fallback, always present
	TierNEON     Tier = 1 << 10 // Arm NEON (128-bit)
	TierSVE      Tier = 1 << 11 // Arm SVE (runtime-discovered vector length)
	TierSVE2     Tier = 1 << 12 // Arm SVE2
	TierHaswell  Tier = 1 << 20 // x86 AVX2 + FMA + F16C
	TierSkylake  Tier = 1 << 21 // x86 AVX-512 foundation
	TierIce      Tier = 1 << 22 // AVX-512 + VNNI + IFMA + BITALG + VBMI2 + VPOPCNTDQ
	TierSapphire Tier = 1 << 23 // AVX-512 + FP16
)

// TierPriority lists every tier in descending order of capability power,
// the order the dispatcher walks when resolving a kernel.
var TierPriority = []Tier{
	TierSapphire,
	TierIce,
	TierSkylake,
	TierHaswell,
	TierSVE2,
	TierSVE,
	TierNEON,
	TierSerial,
}

// String returns a canonical lowercase name for a single tier bit. For a
// mask with multiple bits set it returns the name of the highest-priority
// bit present, or "none" if the mask is zero.
func (t Tier) String() string {
	switch {
	case t&TierSapphire != 0:
		return "sapphire"
	case t&TierIce != 0:
		return "ice"
	case t&TierSkylake != 0:
		return "skylake"
	case t&TierHaswell != 0:
		return "haswell"
	case t&TierSVE2 != 0:
		return "sve2"
	case t&TierSVE != 0:
		return "sve"
	case t&TierNEON != 0:
		return "neon"
	case t&TierSerial != 0:
		return "serial"
	default:
		return "none"
	}
}

var tierAliases = map[string]Tier{
	"serial":   TierSerial,
	"neon":     TierNEON,
	"sve":      TierSVE,
	"sve2":     TierSVE2,
	"haswell":  TierHaswell,
	"skylake":  TierSkylake,
	"ice":      TierIce,
	"sapphire": TierSapphire,
}

// ParseTier resolves a case-insensitive tier name to its canonical Tier bit.
func ParseTier(name string) (Tier, bool) {
	t, ok := tierAliases[strings.ToLower(name)]
	return t, ok
}
