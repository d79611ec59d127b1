package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/rainbow/internal/app"
)

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	eh := &EventHandlers{application: application}
	eh.SetupCallbacks(application.Window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.application.SetViewport(newW, newH) // for window resize
	})
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	// Speed keys repeat while held; the rest act once per press.
	steps := 1
	if (mods & glfw.ModShift) != 0 {
		steps = 4
	}
	switch key {
	case glfw.KeyUp:
		eh.application.AdjustSpeed(steps)
		return
	case glfw.KeyDown:
		eh.application.AdjustSpeed(-steps)
		return
	}

	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeySpace:
		eh.application.TogglePause()
	case glfw.KeyW:
		eh.application.ToggleWheel()
	case glfw.KeyR:
		eh.application.Reset()
	case glfw.KeyEscape:
		eh.application.Window.SetShouldClose(true)
	}
}
