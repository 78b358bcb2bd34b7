package boss

import (
	"labyrinth/pkg/game/dungeon"
)

// Spawner creates the boss content for a room. Implemented outside this module.
type Spawner interface {
	SpawnBoss(room *dungeon.Room) error
}

// Encounter is the boss fight flow of one room: seal the doors when the
// fight starts and reopen them when the boss is defeated
type Encounter struct {
	Room           *dungeon.Room
	Seals          dungeon.Sealable
	Spawner        Spawner
	SealOnEngage   bool
	UnsealOnDefeat bool
	OnlyOnce       bool

	engaged  bool
	defeated bool
}

// NewEncounter creates an encounter with the default flow: seal on engage,
// unseal on defeat, engage only once
func NewEncounter(room *dungeon.Room, seals dungeon.Sealable, spawner Spawner) *Encounter {
	return &Encounter{
		Room:           room,
		Seals:          seals,
		Spawner:        spawner,
		SealOnEngage:   true,
		UnsealOnDefeat: true,
		OnlyOnce:       true,
	}
}

// ForLayout wires an encounter to the layout's boss room and its seal
// manager. Returns nil if no boss room was selected.
func ForLayout(l *dungeon.Layout, spawner Spawner) *Encounter {
	if l == nil || l.BossRoom == nil {
		return nil
	}
	return NewEncounter(l.BossRoom, l.BossRoom.Seals, spawner)
}

// Engage starts the fight. Returns false if it was already engaged and the
// encounter only runs once. A spawner error is returned after sealing.
func (e *Encounter) Engage() (bool, error) {
	if e.OnlyOnce && e.engaged {
		return false, nil
	}
	e.engaged = true
	e.defeated = false

	if e.SealOnEngage && e.Seals != nil {
		e.Seals.SealAll()
	}

	if e.Spawner != nil {
		if err := e.Spawner.SpawnBoss(e.Room); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Defeat ends the fight and reopens the room
func (e *Encounter) Defeat() {
	if !e.engaged || e.defeated {
		return
	}
	e.defeated = true
	if e.UnsealOnDefeat && e.Seals != nil {
		e.Seals.UnsealAll()
	}
}

// Engaged returns true once the fight has started
func (e *Encounter) Engaged() bool {
	return e.engaged
}

// Defeated returns true once the boss is defeated
func (e *Encounter) Defeated() bool {
	return e.defeated
}
