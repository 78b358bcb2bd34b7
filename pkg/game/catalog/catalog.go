// Package catalog holds the prefabricated room templates that layouts are
// assembled from.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// DoorwayDef is a doorway authored on a template, relative to the room origin
type DoorwayDef struct {
	Direction     world.Direction `json:"direction"`
	Local         world.Vec2      `json:"local"`          // Position relative to the room origin
	BlockerOffset world.Vec2      `json:"blocker_offset"` // Offset of the seal blocker from the doorway
}

// UnmarshalJSON decodes a doorway and rejects one without a direction,
// which would otherwise decode as North
func (d *DoorwayDef) UnmarshalJSON(data []byte) error {
	type plain DoorwayDef
	aux := struct {
		Direction *world.Direction `json:"direction"`
		*plain
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Direction == nil {
		return fmt.Errorf("doorway direction is required")
	}
	d.Direction = *aux.Direction
	return nil
}

// RoomTemplate is a single prefabricated room definition
type RoomTemplate struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Bounds      *world.Bounds  `json:"bounds"`  // Authored footprint, relative to the room origin
	Volumes     []world.Bounds `json:"volumes"` // Child volumes, used when Bounds is absent
	Doorways    []DoorwayDef  `json:"doorways"`
}

// Catalog is the read-only set of templates for one generation run
type Catalog struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CellSize    float64         `json:"cell_size"` // Outer room size the templates tile on
	StartRoom   *RoomTemplate   `json:"start_room"`
	Rooms       []*RoomTemplate `json:"rooms"`
}

// Footprint returns the template footprint relative to the room origin.
// Authored bounds win; otherwise all child volumes are combined; otherwise
// a unit box at the origin is used.
func (t *RoomTemplate) Footprint() world.Bounds {
	if t.Bounds != nil && !t.Bounds.IsEmpty() {
		return *t.Bounds
	}
	if len(t.Volumes) > 0 {
		b := t.Volumes[0]
		for _, v := range t.Volumes[1:] {
			b = b.Encapsulate(v)
		}
		return b
	}
	return world.NewBounds(world.Vec2{}, world.Vec2{X: 1, Z: 1})
}

// Doorway returns the first doorway facing dir
func (t *RoomTemplate) Doorway(dir world.Direction) (DoorwayDef, bool) {
	for _, d := range t.Doorways {
		if d.Direction == dir {
			return d, true
		}
	}
	return DoorwayDef{}, false
}

// HasDoorway returns true if the template has a doorway facing dir
func (t *RoomTemplate) HasDoorway(dir world.Direction) bool {
	_, ok := t.Doorway(dir)
	return ok
}

// Validate checks if a template is usable
func (t *RoomTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if t.Bounds != nil && t.Bounds.IsEmpty() {
		return fmt.Errorf("room %s: bounds must have positive extents", t.Name)
	}
	for i, v := range t.Volumes {
		if v.IsEmpty() {
			return fmt.Errorf("room %s: volume %d must have positive extents", t.Name, i)
		}
	}
	for i, d := range t.Doorways {
		if !d.Direction.IsValid() {
			return fmt.Errorf("room %s: doorway %d has invalid direction %d", t.Name, i, int(d.Direction))
		}
	}
	return nil
}

// Validate checks the catalog and every template in it
func (c *Catalog) Validate() error {
	if c.CellSize < 0 {
		return fmt.Errorf("catalog %s: cell size must not be negative", c.Name)
	}
	if c.StartRoom != nil {
		if err := c.StartRoom.Validate(); err != nil {
			return fmt.Errorf("start room: %w", err)
		}
	}
	names := mapset.New[string]()
	for _, room := range c.Rooms {
		if room == nil {
			return fmt.Errorf("catalog %s: nil room entry", c.Name)
		}
		if err := room.Validate(); err != nil {
			return err
		}
		if names.Has(room.Name) {
			return fmt.Errorf("catalog %s: duplicate room name %q", c.Name, room.Name)
		}
		names.Put(room.Name)
	}
	return nil
}

// WithDoorway returns the templates that have a doorway facing dir, in catalog order
func (c *Catalog) WithDoorway(dir world.Direction) []*RoomTemplate {
	var result []*RoomTemplate
	for _, room := range c.Rooms {
		if room != nil && room.HasDoorway(dir) {
			result = append(result, room)
		}
	}
	return result
}

// GetRoomByName finds a template by its name
func (c *Catalog) GetRoomByName(name string) *RoomTemplate {
	for _, room := range c.Rooms {
		if room != nil && room.Name == name {
			return room
		}
	}
	return nil
}

// Load loads a catalog from a JSON file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
