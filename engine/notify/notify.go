// Package notify shows short-lived text messages in the window,
// one at a time, oldest first.
package notify

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultDuration is how many frames a notification stays visible.
const DefaultDuration = 90

// notification is one queued message with a frame budget.
type notification struct {
	text   string
	frames int // frames already shown
	budget int
}

// Queue is a FIFO of notifications. Only the head is visible; it is
// popped once its frame budget runs out. Not safe for concurrent use,
// push and draw from the game loop only.
type Queue struct {
	items []notification
	face  font.Face
	clr   color.Color
}

// NewQueue creates a queue drawing with the built-in 7x13 face.
func NewQueue() *Queue {
	return &Queue{
		face: basicfont.Face7x13,
		clr:  color.RGBA{R: 0xff, A: 0xff},
	}
}

// Push enqueues a message with the default duration.
func (q *Queue) Push(msg string) {
	q.PushFor(msg, DefaultDuration)
}

// PushFor enqueues a message visible for the given number of frames.
func (q *Queue) PushFor(msg string, frames int) {
	q.items = append(q.items, notification{text: msg, budget: frames})
}

// Current returns the visible message, or "" when the queue is empty.
func (q *Queue) Current() string {
	if len(q.items) == 0 {
		return ""
	}
	return q.items[0].text
}

// Len returns the number of queued messages, shown or not.
func (q *Queue) Len() int {
	return len(q.items)
}

// Advance counts one shown frame against the head and pops it when
// its budget is spent. Call once per frame.
func (q *Queue) Advance() {
	if len(q.items) == 0 {
		return
	}
	q.items[0].frames++
	if q.items[0].frames >= q.items[0].budget {
		q.items = q.items[1:]
	}
}

// Draw renders the current notification at the top-left corner and
// advances the queue.
func (q *Queue) Draw(screen *ebiten.Image) {
	if msg := q.Current(); msg != "" {
		text.Draw(screen, msg, q.face, 10, 20, q.clr)
	}
	q.Advance()
}
