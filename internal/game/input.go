package game

import (
	"arenagrid/internal/collision"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler polls the keyboard and drives camera movement and door
// interaction. Movement requests are clamped by the collision resolver
// before the camera commits to them.
type InputHandler struct {
	game    *Game
	heldKey int // Key id presented to locked doors
}

// NewInputHandler creates an input handler bound to the game.
func NewInputHandler(game *Game) *InputHandler {
	return &InputHandler{game: game}
}

// SetHeldKey sets the key id used when interacting with locked doors.
func (ih *InputHandler) SetHeldKey(keyID int) {
	ih.heldKey = keyID
}

// HandleInput processes one frame of input. dt is the frame time in
// seconds.
func (ih *InputHandler) HandleInput(dt float64) {
	ih.handleRotation(dt)
	ih.handleMovement(dt)
	ih.handleInteraction()
}

func (ih *InputHandler) handleRotation(dt float64) {
	cam := ih.game.camera
	rotSpeed := ih.game.cfg.GetRotSpeed()

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cam.Rotate(-rotSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cam.Rotate(rotSpeed * dt)
	}
}

func (ih *InputHandler) handleMovement(dt float64) {
	cam := ih.game.camera
	speed := ih.game.cfg.GetMoveSpeed() * dt

	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveX += cam.GetForwardX() * speed
		moveY += cam.GetForwardY() * speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveX -= cam.GetForwardX() * speed
		moveY -= cam.GetForwardY() * speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX -= cam.GetRightX() * speed
		moveY -= cam.GetRightY() * speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX += cam.GetRightX() * speed
		moveY += cam.GetRightY() * speed
	}

	if moveX == 0 && moveY == 0 {
		return
	}

	radius := ih.game.cfg.Movement.CollisionRadius
	newX, newY := collision.MoveWithSlide(
		ih.game.chunks,
		cam.X, cam.Y,
		cam.X+moveX, cam.Y+moveY,
		radius,
	)
	cam.SetPosition(newX, newY)
}

func (ih *InputHandler) handleInteraction() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyE) {
		return
	}

	cam := ih.game.camera
	reach := ih.game.cfg.Movement.InteractReach

	probe := collision.Probe(
		ih.game.chunks,
		cam.X, cam.Y,
		cam.GetForwardX(), cam.GetForwardY(),
		reach,
	)
	if !probe.Hit {
		return
	}

	door := ih.game.chunks.DoorAt(probe.TileX, probe.TileY)
	if door == nil {
		return
	}

	if door.IsOpen() {
		door.Close()
	} else {
		door.TryOpen(ih.heldKey)
	}
}
