package markup

// Features selects which attribute and emoji groups a Renderer is built
// with. It is fixed at construction time; build a second Renderer to get a
// different configuration.
type Features struct {
	Emoji          bool // core shortcodes (:check:, :fire:, ...)
	ExtendedEmoji  bool // the larger shortcode set; needs Emoji
	ExtendedColors bool // orange, pink, purple, ...
	BrightColors   bool // bright_red, bright_green, ...
	Styles         bool // bold, dim, italic, underline, invert, strikethrough
	Gradients      bool // [rainbow] and [gradient a b]
	Unicode        bool // :U-XXXX: codepoint escapes
}

// AllFeatures enables every group.
func AllFeatures() Features {
	return Features{
		Emoji:          true,
		ExtendedEmoji:  true,
		ExtendedColors: true,
		BrightColors:   true,
		Styles:         true,
		Gradients:      true,
		Unicode:        true,
	}
}

// MinimalFeatures keeps only the eight standard colors, numeric colors and
// bracket escapes.
func MinimalFeatures() Features {
	return Features{}
}
