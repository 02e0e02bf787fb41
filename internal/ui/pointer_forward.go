package ui

import (
	"fyne.io/fyne/v2"
)

// pointerForwarder adapts one widget's raw input into the gesture
// controller's pointer stream. It remembers the last position so a release
// outside the widget can still be reported, and it drops the second of the
// two release events the desktop driver can deliver for one gesture.
type pointerForwarder struct {
	controller func() *GestureController
	target     PressTarget
	index      func() int

	pressed   bool
	lastPoint fyne.Position
}

func (p *pointerForwarder) down(pos fyne.Position) {
	p.pressed = true
	p.lastPoint = pos
	if c := p.controller(); c != nil {
		c.PointerDown(pos, p.target, p.index())
	}
}

func (p *pointerForwarder) move(pos fyne.Position) {
	p.lastPoint = pos
	if c := p.controller(); c != nil {
		c.PointerMove(pos)
	}
}

func (p *pointerForwarder) up(pos fyne.Position) {
	if !p.pressed {
		return
	}
	p.pressed = false
	if c := p.controller(); c != nil {
		c.PointerUp(pos)
	}
}

func (p *pointerForwarder) upAtLast() {
	p.up(p.lastPoint)
}

func (p *pointerForwarder) cancel() {
	if !p.pressed {
		return
	}
	p.pressed = false
	if c := p.controller(); c != nil {
		c.PointerCancel()
	}
}
