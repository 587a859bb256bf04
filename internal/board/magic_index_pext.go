//go:build pext

package board

// index maps an occupancy to the slot within this square's attack table
// region by extracting the bits selected by the mask and packing them
// contiguously. Trivially injective over the mask's subset space, so the
// magic multiplier and shift go unused under this build tag.
func (m *Magic) index(occupied Bitboard) uint32 {
	var idx uint32
	bit := uint32(1)
	occ := uint64(occupied)
	for mask := uint64(m.Mask); mask != 0; mask &= mask - 1 {
		if occ&mask&-mask != 0 {
			idx |= bit
		}
		bit <<= 1
	}
	return idx
}
