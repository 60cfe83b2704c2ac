package markup

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/ansiprint/pkg/errors"
	"github.com/arthur-debert/ansiprint/pkg/logging"
)

// Renderer turns markup into bytes for a PutFunc sink. It owns the color
// switch, the default colors, the tag and effect state and a borrowed
// format buffer. A Renderer is not safe for concurrent use; give each
// goroutine its own.
type Renderer struct {
	features Features
	attrs    *AttrTable
	emoji    *EmojiTable

	put   PutFunc
	flush FlushFunc
	buf   []byte

	enabled     bool
	noColorLock bool

	defaultFG Color
	defaultBG Color

	state    TagState
	gradient gradient
	rainbow  rainbow

	log zerolog.Logger
}

// New builds a Renderer for the given feature set. Output is discarded
// until Init installs a sink.
func New(features Features) *Renderer {
	if !features.Emoji {
		features.ExtendedEmoji = false
	}
	r := &Renderer{
		features: features,
		attrs:    NewAttrTable(features),
		emoji:    NewEmojiTable(features),
		put:      discardPut,
		flush:    discardFlush,
		enabled:  true,
		log:      logging.GetLogger("markup"),
	}
	return r
}

// Init installs the sink and the format buffer. nil functions become
// no-ops. Init turns color back on and clears a NO_COLOR lock.
func (r *Renderer) Init(put PutFunc, flush FlushFunc, buf []byte) {
	if put == nil {
		put = discardPut
	}
	if flush == nil {
		flush = discardFlush
	}
	r.put = put
	r.flush = flush
	r.buf = buf
	r.enabled = true
	r.noColorLock = false
	r.log.Debug().Int("buffer", len(buf)).Msg("renderer initialized")
}

// Features reports the feature set the renderer was built with.
func (r *Renderer) Features() Features { return r.features }

// Attrs is the attribute table tag words resolve against.
func (r *Renderer) Attrs() *AttrTable { return r.attrs }

// Emoji is the shortcode table, nil when emoji are disabled.
func (r *Renderer) Emoji() *EmojiTable { return r.emoji }

// SetEnabled switches color output. It has no effect once NO_COLOR locked
// color off.
func (r *Renderer) SetEnabled(on bool) {
	if r.noColorLock {
		return
	}
	r.enabled = on
}

// Enabled reports whether escapes are being emitted.
func (r *Renderer) Enabled() bool { return r.enabled }

// Toggle flips color output, subject to the NO_COLOR lock.
func (r *Renderer) Toggle() {
	if r.noColorLock {
		return
	}
	r.enabled = !r.enabled
}

// LockNoColor disables color until the next Init.
func (r *Renderer) LockNoColor() {
	r.enabled = false
	r.noColorLock = true
	r.log.Debug().Msg("color locked off by NO_COLOR")
}

// NoColorLocked reports whether LockNoColor is in force.
func (r *Renderer) NoColorLocked() bool { return r.noColorLock }

// SetDefaultFG makes the named color the baseline foreground that [/] and
// selective closes return to, and emits it when color is on. An empty
// name clears the default. Names that are not colors are rejected.
func (r *Renderer) SetDefaultFG(name string) error {
	c, err := r.defaultColor(name)
	if err != nil {
		return err
	}
	r.defaultFG = c
	if c.IsZero() {
		return nil
	}
	r.state.FG = c
	if r.enabled {
		r.write(c.attr.FG)
	}
	return nil
}

// SetDefaultBG is SetDefaultFG for the background.
func (r *Renderer) SetDefaultBG(name string) error {
	c, err := r.defaultColor(name)
	if err != nil {
		return err
	}
	r.defaultBG = c
	if c.IsZero() {
		return nil
	}
	r.state.BG = c
	if r.enabled {
		r.write(c.attr.BG)
	}
	return nil
}

func (r *Renderer) defaultColor(name string) (Color, error) {
	if name == "" {
		return Color{}, nil
	}
	a := r.attrs.LookupString(name)
	if !a.IsColor() {
		return Color{}, errors.Newf(errors.ErrUnknownColor, "unknown color %q", name).
			WithDetail("name", name)
	}
	r.log.Debug().Str("color", name).Msg("default color set")
	return Named(a), nil
}

// Baseline is the state an emission starts from: the default colors and
// no styles.
func (r *Renderer) Baseline() TagState {
	return TagState{FG: r.defaultFG, BG: r.defaultBG}
}

// State is the tag state left by the last emission.
func (r *Renderer) State() TagState { return r.state }

// Buffer returns the format buffer installed by Init.
func (r *Renderer) Buffer() []byte { return r.buf }

// ColorCode returns the escape a tag word would emit: the foreground code
// of a color or the code of a style. It is empty for effects and unknown
// names.
func (r *Renderer) ColorCode(name string) string {
	if a := r.attrs.LookupString(name); a != nil {
		return a.FG
	}
	return ""
}

// Format renders format and args into the buffer, truncating at its
// length, and returns the filled prefix. The result aliases the buffer and
// is overwritten by the next call.
func (r *Renderer) Format(format string, args ...interface{}) ([]byte, error) {
	if len(r.buf) == 0 {
		return nil, errors.New(errors.ErrNoBuffer, "no format buffer installed")
	}
	if format == "" {
		return nil, errors.New(errors.ErrNoFormat, "empty format string")
	}
	w := fixedWriter{buf: r.buf}
	_, _ = fmt.Fprintf(&w, format, args...)
	return r.buf[:w.n], nil
}

// Print formats into the buffer and emits the result as markup.
func (r *Renderer) Print(format string, args ...interface{}) error {
	p, err := r.Format(format, args...)
	if err != nil {
		return err
	}
	r.Emit(p)
	return nil
}

// Puts emits s as markup without formatting.
func (r *Renderer) Puts(s string) {
	r.Emit([]byte(s))
}

// Emit renders markup to the sink and flushes. A trailing reset is written
// when the text leaves anything switched on.
func (r *Renderer) Emit(p []byte) {
	r.begin()
	r.run(p, -1)
	r.finish()
	r.flush()
}

// EmitBounded renders markup until maxVisible cells have been written. It
// does not flush. An emoji straddling the limit is written whole.
func (r *Renderer) EmitBounded(p []byte, maxVisible int) {
	r.begin()
	r.run(p, maxVisible)
	r.finish()
}

// CountVisible is the number of cells p occupies once rendered: tags take
// none, emoji their table width, everything else one.
func (r *Renderer) CountVisible(p []byte) int {
	sc := r.scanner(p)
	n := 0
	for tok := sc.Next(); tok.Kind != TokenEnd; tok = sc.Next() {
		n += tok.Cells()
	}
	return n
}

// WriteRaw sends s to the sink untouched.
func (r *Renderer) WriteRaw(s string) { r.write(s) }

// RawByte sends one byte to the sink untouched.
func (r *Renderer) RawByte(c byte) { r.put(c) }

// Flush calls the sink's flush function.
func (r *Renderer) Flush() { r.flush() }

func (r *Renderer) scanner(p []byte) Scanner {
	return NewScanner(p, r.emoji, r.features.Unicode)
}

func (r *Renderer) begin() {
	r.state = r.Baseline()
	r.gradient = gradient{}
	r.rainbow = rainbow{}
}

// run emits tokens until the input ends or maxVisible cells are out. A
// negative maxVisible means no limit. It returns the cells written.
func (r *Renderer) run(p []byte, maxVisible int) int {
	sc := r.scanner(p)
	vis := 0
	for maxVisible < 0 || vis < maxVisible {
		tok := sc.Next()
		switch tok.Kind {
		case TokenEnd:
			return vis
		case TokenTag:
			r.applyTag(tok.Text)
			continue
		case TokenChar:
			if tok.Visible() {
				r.colorUnit(p, tok)
			}
			r.writeBytes(tok.Text)
		case TokenEscape:
			r.colorUnit(p, tok)
			r.put(tok.Literal)
		case TokenEmoji:
			r.colorUnit(p, tok)
			r.write(tok.Emoji.UTF8)
		case TokenCodepoint:
			r.colorUnit(p, tok)
			enc, n := EncodeUTF8(tok.Rune)
			r.writeBytes(enc[:n])
		}
		vis += tok.Cells()
	}
	return vis
}

// finish resets the terminal if the text left anything on, then restores
// the default colors.
func (r *Renderer) finish() {
	if !r.enabled {
		return
	}
	if r.state == r.Baseline() && !r.gradient.active && !r.rainbow.active {
		return
	}
	r.write(Reset)
	r.state = r.Baseline()
	r.gradient = gradient{}
	r.rainbow = rainbow{}
	r.reapply()
}

func (r *Renderer) write(s string) {
	for i := 0; i < len(s); i++ {
		r.put(s[i])
	}
}

func (r *Renderer) writeBytes(b []byte) {
	for _, c := range b {
		r.put(c)
	}
}

func (r *Renderer) writeFG(c Color) {
	var esc [16]byte
	r.writeBytes(c.AppendFG(esc[:0]))
}

func (r *Renderer) writeBG(c Color) {
	var esc [16]byte
	r.writeBytes(c.AppendBG(esc[:0]))
}

// fixedWriter fills a caller-owned buffer and silently drops what does not
// fit.
type fixedWriter struct {
	buf []byte
	n   int
}

func (w *fixedWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}
