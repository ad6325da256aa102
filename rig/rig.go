// Package rig animates the room's characters procedurally.
//
// Every oscillator reads elapsed time, so a pose is a pure function of the
// clock, except for the accumulated angles (walker path phase, child spin),
// which are integrated from the tick deltas.
package rig

import "github.com/akmonengine/hearth/actor"

// Rig is one animated character. Animate only writes the transforms of the
// nodes the rig was bound to.
type Rig interface {
	Name() string
	Animate(graph *actor.Graph, elapsed, dt float64)
}

// Limbs groups the part handles shared by every character
type Limbs struct {
	Group    actor.Handle
	Body     actor.Handle
	Head     actor.Handle
	LeftArm  actor.Handle
	RightArm actor.Handle
}

// Legged adds the legs of the walking characters
type Legged struct {
	Limbs
	LeftLeg  actor.Handle
	RightLeg actor.Handle
}
