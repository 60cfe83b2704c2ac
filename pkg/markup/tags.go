package markup

const gradientPrefix = gradientName + " "

// applyTag interprets the body of a [tag]. Tags are ignored while color is
// disabled.
func (r *Renderer) applyTag(body []byte) {
	if !r.enabled || len(body) == 0 {
		return
	}
	if body[0] == '/' {
		r.closeTag(body[1:])
		return
	}
	if r.features.Gradients && len(body) > len(gradientPrefix) &&
		string(body[:len(gradientPrefix)]) == gradientPrefix {
		r.openGradient(body[len(gradientPrefix):])
		return
	}

	fg, bg := splitOn(body)
	for w, rest := nextWord(fg); len(w) > 0; w, rest = nextWord(rest) {
		if a := r.attrs.Lookup(w); a != nil {
			switch a.Kind {
			case KindColor:
				r.write(a.FG)
				r.state.FG = Named(a)
			case KindStyle:
				r.write(a.FG)
				r.state.Styles |= a.Style
			case KindEffect:
				if !r.rainbow.active {
					r.rainbow.start()
				}
			}
			continue
		}
		if n, ok := parseLevel(w, "fg:"); ok {
			r.state.FG = Indexed(n)
			r.writeFG(r.state.FG)
		}
	}

	bg = trimSpace(bg)
	if len(bg) == 0 {
		return
	}
	if a := r.attrs.Lookup(bg); a.IsColor() {
		r.write(a.BG)
		r.state.BG = Named(a)
	} else if n, ok := parseLevel(bg, "bg:"); ok {
		r.state.BG = Indexed(n)
		r.writeBG(r.state.BG)
	}
}

// openGradient handles the arguments of [gradient a b]. Both words must
// name colors, otherwise the tag is dropped.
func (r *Renderer) openGradient(args []byte) {
	w1, rest := nextWord(args)
	w2, _ := nextWord(rest)
	from, to := r.attrs.Lookup(w1), r.attrs.Lookup(w2)
	if !from.IsColor() || !to.IsColor() {
		return
	}
	r.gradient.start()
	r.gradient.from = from.RGB
	r.gradient.to = to.RGB
}

// closeTag handles the body of [/...] after the slash. Every close emits a
// reset followed by whatever state remains.
func (r *Renderer) closeTag(body []byte) {
	if len(body) == 0 {
		r.write(Reset)
		r.state = r.Baseline()
		r.gradient = gradient{}
		r.rainbow = rainbow{}
		r.reapply()
		return
	}

	if r.features.Gradients {
		if isEffectClose(body, gradientName, true) {
			r.gradient = gradient{}
			r.write(Reset)
			r.reapply()
			return
		}
		if isEffectClose(body, rainbowName, false) {
			r.rainbow = rainbow{}
			r.write(Reset)
			r.reapply()
			return
		}
	}

	fg, bg := splitOn(body)
	for w, rest := nextWord(fg); len(w) > 0; w, rest = nextWord(rest) {
		if a := r.attrs.Lookup(w); a != nil {
			switch a.Kind {
			case KindColor:
				if r.state.FG.attr == a {
					r.state.FG = r.defaultFG
				}
			case KindStyle:
				r.state.Styles &^= a.Style
			case KindEffect:
				r.rainbow = rainbow{}
			}
			continue
		}
		if n, ok := parseLevel(w, "fg:"); ok && !r.state.FG.IsZero() {
			var cur, want [16]byte
			if string(r.state.FG.AppendFG(cur[:0])) == string(Indexed(n).AppendFG(want[:0])) {
				r.state.FG = r.defaultFG
			}
		}
	}

	bg = trimSpace(bg)
	if len(bg) > 0 && !r.state.BG.IsZero() {
		if a := r.attrs.Lookup(bg); a.IsColor() {
			if r.state.BG.attr == a {
				r.state.BG = r.defaultBG
			}
		} else if n, ok := parseLevel(bg, "bg:"); ok {
			var cur, want [16]byte
			if string(r.state.BG.AppendBG(cur[:0])) == string(Indexed(n).AppendBG(want[:0])) {
				r.state.BG = r.defaultBG
			}
		}
	}

	r.write(Reset)
	r.reapply()
}

// isEffectClose matches a close-tag body against an effect name. With
// args, trailing words after the name are allowed.
func isEffectClose(body []byte, name string, args bool) bool {
	if len(body) < len(name) || string(body[:len(name)]) != name {
		return false
	}
	return len(body) == len(name) || (args && body[len(name)] == ' ')
}

// reapply re-emits the active state after a reset in a fixed order:
// foreground, background, then styles.
func (r *Renderer) reapply() {
	r.writeFG(r.state.FG)
	r.writeBG(r.state.BG)
	for _, s := range styleOrder {
		if r.state.Styles&s.bit != 0 {
			r.write(s.code)
		}
	}
}
