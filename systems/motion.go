// Package systems contains the operations of the simulation engine.
package systems

import (
	"github.com/pthm-cable/hound/components"
)

// UpdatePosition advances the agent's position by velocity * deltaTime
// and records a snapshot of the new position in the movement history.
// Velocity is untouched. deltaTime is not validated; a negative value
// moves the agent backward along its velocity.
func UpdatePosition(a *components.Agent, deltaTime float64) {
	a.Position.X += a.Velocity.X * deltaTime
	a.Position.Y += a.Velocity.Y * deltaTime
	a.Position.Z += a.Velocity.Z * deltaTime

	a.History.Push(a.Position)
}
