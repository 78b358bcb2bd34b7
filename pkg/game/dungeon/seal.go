package dungeon

// Sealable is implemented by anything that can close and reopen all of a
// room's doors, such as the boss fight flow
type Sealable interface {
	SealAll()
	UnsealAll()
}

// SealManager controls the blockers of one room's doorways
type SealManager struct {
	room   *Room
	sealed bool
}

// NewSealManager creates the seal manager for a room
func NewSealManager(r *Room) *SealManager {
	return &SealManager{room: r}
}

// SealUnmatched plugs every doorway that was not matched to another room and
// returns how many were sealed. Matched doorways have their blocker turned
// off. Sealed doorways count as connected, so a second call seals nothing.
func (m *SealManager) SealUnmatched() int {
	if m == nil || m.room == nil {
		return 0
	}

	sealedCount := 0
	for _, d := range m.room.Doorways {
		if d == nil {
			continue
		}
		if !d.Connected {
			if d.Blocker != nil {
				d.Blocker.Activate(d)
			}
			d.Connected = true
			d.State = DoorwaySealed
			sealedCount++
			continue
		}
		if d.State == DoorwayMatched && d.Blocker != nil && !m.sealed {
			d.Blocker.Deactivate()
		}
	}
	return sealedCount
}

// Seal turns every blocker in the room on (true) or restores the
// post-generation state (false). Doorways sealed as unmatched stay plugged.
func (m *SealManager) Seal(seal bool) {
	if m == nil || m.room == nil {
		return
	}
	m.sealed = seal
	for _, d := range m.room.Doorways {
		if d == nil || d.Blocker == nil {
			continue
		}
		switch {
		case seal:
			d.Blocker.Activate(d)
		case d.State == DoorwaySealed:
			d.Blocker.Activate(d)
		default:
			d.Blocker.Deactivate()
		}
	}
}

// SealAll closes every doorway in the room
func (m *SealManager) SealAll() { m.Seal(true) }

// UnsealAll reopens every matched doorway in the room
func (m *SealManager) UnsealAll() { m.Seal(false) }

// IsSealed returns true while a manual seal is in effect
func (m *SealManager) IsSealed() bool {
	return m != nil && m.sealed
}

// ActiveBlockers returns the number of blockers currently enabled
func (m *SealManager) ActiveBlockers() int {
	if m == nil || m.room == nil {
		return 0
	}
	n := 0
	for _, d := range m.room.Doorways {
		if d != nil && d.Blocker != nil && d.Blocker.Active {
			n++
		}
	}
	return n
}
