/*
Package dropdown provides a dropdown (select) control for retained-mode
GUIs on small screens: a closed button showing the selected option, and a
floating overlay listing every option while open.

# Overview

A Screen hosts controls, their overlays and a run-to-completion event queue.
Input arrives either as polled frames (Screen.Update with an InputState) or
as events from a focus Group (keypad keys, encoder turns and clicks). Each
Control runs a two-state machine, closed and open, over a single
OptionStore shared by the button and the overlay.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	scr := dropdown.NewScreen(dropdown.WithViewport(dropdown.Rect{W: 800, H: 600}))
	group := dropdown.NewGroup(scr)
	scr.SetInputGroup(group)

	dropdown.New(scr,
	    dropdown.WithOptions("Low\nMedium\nHigh"),
	    dropdown.WithPos(40, 40),
	    dropdown.WithGroup(group),
	    dropdown.OnChange(func(c *dropdown.Control, i int) {
	        log.Printf("quality: %s", c.SelectedString())
	    }),
	)

	for !window.ShouldClose() {
	    in := adapter.Update(dt)
	    glfw.PollEvents()
	    scr.Update(in)
	    scr.Render(renderer)
	    window.SwapBuffers()
	}

# Options

Options are one `\n`-delimited string. SetOptions and AddOption copy into a
buffer taken from the screen's Allocator; SetOptionsStatic borrows the
caller's string without copying. Every allocation may fail with ErrNoMemory,
in which case the requested change is abandoned.

# Selection

The committed index is the selection while closed. While open, the pending
index is the highlighted row: confirming commits it, cancelling (Esc, focus
loss, moving the control) discards it. The change handler runs only when a
commit actually changes the selection.

# Keyboard and Encoder Reference

Keypad (through a Group):

	Tab              Focus next control (Shift+Tab: previous)
	Up / Left        Open, or highlight the previous option
	Down / Right     Open, or highlight the next option
	Enter            Open, or confirm the highlighted option
	Esc              Close without selecting

Encoder:

	Click            Enter editing mode (opens), or confirm (closes)
	Turn             Move focus, or while editing move the highlight

# Placement

The overlay opens on the configured side. A downward overlay that would
leave the viewport flips up when there is more room above (and vice versa);
otherwise it shrinks to the room available. Left and right overlays never
flip; they slide up to stay on screen. The overlay scrolls so the selected
row is at the top without scrolling past the last option.
*/
package dropdown
