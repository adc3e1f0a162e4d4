// Package router holds the active screen. The app replaces it after every
// state transition so the screen always reflects the current session.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkup/internal/screen"
)

// ReplaceScreenMsg asks the router to swap the active screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router forwards messages to a single active screen.
type Router struct {
	active   screen.Screen
	replaced int
}

// New creates a Router showing initial. Its Init is left to the caller.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace swaps the active screen and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	r.replaced++
	if s == nil {
		return nil
	}
	return s.Init()
}

// Active returns the screen on display.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Replacements counts Replace calls, i.e. how often the view was rebuilt.
func (r *Router) Replacements() int {
	return r.replaced
}

// Update handles ReplaceScreenMsg and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(m.Screen)
	}
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
