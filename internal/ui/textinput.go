// Package ui has the small widget set drawn on the canvas.
package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"trajview/internal/config"
)

// Cursor blink half-period in frames (0.6 s at 60 fps).
const cursorInterval = 36

// Debug font glyph width in pixels, used to place the cursor.
const glyphWidth = 8

// TextInput is a single-line numeric entry box. A click inside focuses it,
// keystrokes are filtered to well-formed number prefixes, Enter commits and
// defocuses. The game loop owns it; no locking.
type TextInput struct {
	X, Y, W, H  int
	Placeholder string

	Text    string
	Focused bool
	Invalid bool

	cursorTimer   int
	cursorVisible bool
}

// Contains reports whether the point lies inside the box.
func (in *TextInput) Contains(x, y int) bool {
	return x >= in.X && x <= in.X+in.W && y >= in.Y && y <= in.Y+in.H
}

// HandleClick focuses the box when the click lands inside it and defocuses it
// otherwise.
func (in *TextInput) HandleClick(x, y int) {
	in.Focused = in.Contains(x, y)
	in.cursorVisible = true
	in.cursorTimer = 0
}

// HandleRune appends r to the buffer if the result is still a well-formed
// number prefix: digits anywhere, one dot, a minus only in front. Anything
// else is dropped.
func (in *TextInput) HandleRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		in.Text += string(r)
	case r == '.':
		if !strings.ContainsRune(in.Text, '.') {
			in.Text += "."
		}
	case r == '-':
		if in.Text == "" {
			in.Text = "-"
		}
	}
}

// HandleBackspace removes the last rune of the buffer.
func (in *TextInput) HandleBackspace() {
	if in.Text != "" {
		in.Text = in.Text[:len(in.Text)-1]
	}
}

// Commit defocuses the box, leaving the buffer as the committed value.
func (in *TextInput) Commit() {
	in.Focused = false
}

// Value parses the committed buffer. ok is false when the box is empty or
// holds only a number prefix ("-", ".", "-."), which callers treat as "use
// the default".
func (in *TextInput) Value() (v float64, ok bool) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Update polls mouse and keyboard state for this frame. Call once per Update
// tick before reading Value.
func (in *TextInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.HandleClick(ebiten.CursorPosition())
	}

	if !in.Focused {
		in.cursorVisible = false
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		in.HandleRune(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		in.HandleBackspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		in.Commit()
		return
	}

	in.cursorTimer++
	if in.cursorTimer >= cursorInterval {
		in.cursorVisible = !in.cursorVisible
		in.cursorTimer = 0
	}
}

// Draw renders the box background, border, buffer (or placeholder) and the
// blinking cursor.
func (in *TextInput) Draw(screen *ebiten.Image) {
	bg := color.Color(config.InputBGColor)
	if in.Focused {
		bg = config.InputFocusColor
	}
	vector.DrawFilledRect(screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), bg, false)

	border := color.Color(config.GridColor)
	if in.Invalid {
		border = config.ErrorColor
	}
	vector.StrokeRect(screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), 1, border, false)

	text := in.Text
	if text == "" {
		text = in.Placeholder
	}
	textY := in.Y + (in.H-16)/2
	ebitenutil.DebugPrintAt(screen, text, in.X+10, textY)

	if in.Focused && in.cursorVisible {
		cursorX := float32(in.X + 10 + len(in.Text)*glyphWidth)
		vector.StrokeLine(screen, cursorX, float32(in.Y+8), cursorX, float32(in.Y+in.H-8), 1, config.TextColor, false)
	}
}
