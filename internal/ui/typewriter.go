package ui

import (
	"context"
	"io"
	"time"
	"unicode/utf8"
)

// DefaultPrintDelay is the pause between characters of battle log text.
const DefaultPrintDelay = 50 * time.Millisecond

// Typewriter writes one character at a time with a pause in between. Once
// ctx is done the remaining text is written at once.
type Typewriter struct {
	ctx   context.Context
	w     io.Writer
	delay time.Duration
}

func NewTypewriter(ctx context.Context, w io.Writer, delay time.Duration) *Typewriter {
	return &Typewriter{ctx: ctx, w: w, delay: delay}
}

func (t *Typewriter) Write(p []byte) (int, error) {
	if t.delay <= 0 {
		return t.w.Write(p)
	}

	written := 0
	for written < len(p) {
		if t.ctx.Err() != nil {
			n, err := t.w.Write(p[written:])
			return written + n, err
		}

		_, size := utf8.DecodeRune(p[written:])
		n, err := t.w.Write(p[written : written+size])
		written += n
		if err != nil {
			return written, err
		}

		timer := time.NewTimer(t.delay)
		select {
		case <-timer.C:
		case <-t.ctx.Done():
			timer.Stop()
		}
	}
	return written, nil
}
