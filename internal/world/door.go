package world

// DoorState enumerates the door animation states. Closed and Open are
// the only stable states; Opening and Closing are transient.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	case DoorClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// DefaultDoorRate is the door animation rate in progress units per
// second when the owning grid does not override it.
const DefaultDoorRate = 2.0

// Door is a tile-aligned door owned by a TileGrid. While Open it makes
// its tile walkable regardless of the tile's stored solidity.
type Door struct {
	TileX, TileY int
	State        DoorState
	OpenProgress float64 // 0 = fully closed, 1 = fully open
	Locked       bool
	LockID       int // Key id required to unlock; 0 means any key

	rate float64
}

// Update advances the open/close animation by dt seconds. Progress is
// clamped to [0,1] so a large dt cannot overshoot past a stable state.
func (d *Door) Update(dt float64) {
	rate := d.rate
	if rate <= 0 {
		rate = DefaultDoorRate
	}

	switch d.State {
	case DoorOpening:
		d.OpenProgress += rate * dt
		if d.OpenProgress >= 1.0 {
			d.OpenProgress = 1.0
			d.State = DoorOpen
		}
	case DoorClosing:
		d.OpenProgress -= rate * dt
		if d.OpenProgress <= 0.0 {
			d.OpenProgress = 0.0
			d.State = DoorClosed
		}
	}
}

// CanOpen reports whether the door would start opening on TryOpen
// without a key.
func (d *Door) CanOpen() bool {
	return d.State == DoorClosed && !d.Locked
}

// TryOpen attempts to start opening the door. A locked door is first
// unlocked with keyID; the wrong key leaves the door closed and locked.
// Returns true when the door transitions to Opening.
func (d *Door) TryOpen(keyID int) bool {
	if d.Locked {
		if d.TryUnlock(keyID) {
			d.State = DoorOpening
			return true
		}
		return false
	}

	if d.State == DoorClosed {
		d.State = DoorOpening
		return true
	}

	return false
}

// Close starts closing a fully open door. Doors do not re-lock when
// they close; locking only changes through TryUnlock.
func (d *Door) Close() {
	if d.State == DoorOpen {
		d.State = DoorClosing
	}
}

// TryUnlock unlocks the door when keyID matches its lock, or when the
// door requires no specific key. An unlocked door reports success.
func (d *Door) TryUnlock(keyID int) bool {
	if !d.Locked {
		return true
	}

	if keyID == d.LockID || d.LockID == 0 {
		d.Locked = false
		return true
	}

	return false
}

// IsOpen reports whether the door is fully open.
func (d *Door) IsOpen() bool {
	return d.State == DoorOpen
}

// IsClosed reports whether the door is fully closed.
func (d *Door) IsClosed() bool {
	return d.State == DoorClosed
}

// IsLocked reports whether the door is locked.
func (d *Door) IsLocked() bool {
	return d.Locked
}
