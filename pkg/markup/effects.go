package markup

var rainbowPalette = [...]uint8{
	196, 202, 208, 214, 220, 226, 190, 154, 118, 82, 46,
	48, 51, 45, 39, 33, 63, 93, 129, 165, 201,
}

const (
	gradientName = "gradient"
	rainbowName  = "rainbow"
)

// effect tracks how far a color effect has progressed through the units it
// spans. span is zero until the pre-scan has run.
type effect struct {
	active bool
	span   int
	index  int
}

// step returns the current unit's position as i out of n, with i clamped
// to n, and advances the index.
func (e *effect) step() (i, n int) {
	n = 1
	if e.span > 1 {
		n = e.span - 1
	}
	i = e.index
	if i > n {
		i = n
	}
	e.index++
	return i, n
}

func (e *effect) start() {
	*e = effect{active: true}
}

type gradient struct {
	effect
	from, to RGB
}

func (g *gradient) next() RGB {
	i, n := g.step()
	return RGB{
		R: lerp(g.from.R, g.to.R, i, n),
		G: lerp(g.from.G, g.to.G, i, n),
		B: lerp(g.from.B, g.to.B, i, n),
	}
}

func lerp(a, b uint8, i, n int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*i/n)
}

type rainbow struct {
	effect
}

func (r *rainbow) next() uint8 {
	i, n := r.step()
	last := len(rainbowPalette) - 1
	pos := i * last / n
	if pos > last {
		pos = last
	}
	return rainbowPalette[pos]
}

// closesEffect reports whether a tag body ends the named effect during a
// pre-scan: [/], [/name] or [/name ...].
func closesEffect(body []byte, name string) bool {
	if len(body) == 0 || body[0] != '/' {
		return false
	}
	return len(body) == 1 || isEffectClose(body[1:], name, true)
}

// effectSpan counts the visible units from offset start up to the effect's
// closing tag or the end of src. It never returns less than one.
func (r *Renderer) effectSpan(src []byte, start int, name string) int {
	sc := r.scanner(src)
	sc.pos = start
	n := 0
	for {
		tok := sc.Next()
		if tok.Kind == TokenEnd {
			break
		}
		if tok.Kind == TokenTag {
			if closesEffect(tok.Text, name) {
				break
			}
			continue
		}
		if tok.Visible() {
			n++
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// colorUnit emits the effect color for the visible unit tok, running the
// pre-scan first if the active effect has no span yet. The gradient wins
// when both effects are on.
func (r *Renderer) colorUnit(src []byte, tok Token) {
	if !r.enabled {
		return
	}
	if r.gradient.active && r.gradient.span == 0 {
		r.gradient.span = r.effectSpan(src, tok.Start, gradientName)
	}
	if r.rainbow.active && r.rainbow.span == 0 {
		r.rainbow.span = r.effectSpan(src, tok.Start, rainbowName)
	}

	var esc [24]byte
	switch {
	case r.gradient.active:
		r.writeBytes(appendRGB(esc[:0], r.gradient.next()))
	case r.rainbow.active:
		r.writeBytes(appendLevel(esc[:0], fgIndexed, r.rainbow.next()))
	}
}
