//go:build !pext

package board

// index maps an occupancy to the slot within this square's attack table
// region using multiply-shift magic hashing. The multiplier guarantees
// the mapping is injective over the mask's subset space.
func (m *Magic) index(occupied Bitboard) uint32 {
	return uint32(((uint64(occupied) & uint64(m.Mask)) * m.Magic) >> m.Shift)
}
