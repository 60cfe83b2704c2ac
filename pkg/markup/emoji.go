package markup

// Emoji is a shortcode entry: the UTF-8 glyph and the number of terminal
// cells it occupies.
type Emoji struct {
	Name  string
	UTF8  string
	Width int
}

func emoji(name, glyph string, width int) Emoji {
	return Emoji{Name: name, UTF8: glyph, Width: width}
}

var coreEmoji = []Emoji{
	emoji("check", "✅", 2),
	emoji("cross", "❌", 2),
	emoji("warning", "⚠", 1),
	emoji("info", "ℹ", 1),
	emoji("star", "⭐", 2),
	emoji("fire", "\U0001F525", 2),
	emoji("rocket", "\U0001F680", 2),
	emoji("zap", "⚡", 2),
	emoji("bug", "\U0001F41B", 2),
	emoji("wrench", "\U0001F527", 2),
	emoji("gear", "⚙", 1),
	emoji("bell", "\U0001F514", 2),
	emoji("sparkles", "✨", 2),
	emoji("heart", "❤", 1),
	emoji("thumbs_up", "\U0001F44D", 2),
	emoji("thumbs_down", "\U0001F44E", 2),
	emoji("arrow", "➜", 1),
	emoji("clock", "⏰", 2),
	emoji("hourglass", "⌛", 2),
	emoji("lock", "\U0001F512", 2),
	emoji("key", "\U0001F511", 2),
}

var extendedEmoji = []Emoji{
	// faces
	emoji("smile", "\U0001F604", 2),
	emoji("grin", "\U0001F601", 2),
	emoji("joy", "\U0001F602", 2),
	emoji("wink", "\U0001F609", 2),
	emoji("blush", "\U0001F60A", 2),
	emoji("heart_eyes", "\U0001F60D", 2),
	emoji("sunglasses", "\U0001F60E", 2),
	emoji("thinking", "\U0001F914", 2),
	emoji("neutral_face", "\U0001F610", 2),
	emoji("confused", "\U0001F615", 2),
	emoji("cry", "\U0001F622", 2),
	emoji("sob", "\U0001F62D", 2),
	emoji("angry", "\U0001F620", 2),
	emoji("rage", "\U0001F621", 2),
	emoji("scream", "\U0001F631", 2),
	emoji("sleeping", "\U0001F634", 2),
	emoji("skull", "\U0001F480", 2),
	emoji("ghost", "\U0001F47B", 2),
	emoji("robot", "\U0001F916", 2),
	emoji("alien", "\U0001F47D", 2),
	emoji("poop", "\U0001F4A9", 2),
	emoji("clown", "\U0001F921", 2),
	emoji("party", "\U0001F973", 2),
	emoji("mind_blown", "\U0001F92F", 2),

	// hands
	emoji("wave", "\U0001F44B", 2),
	emoji("clap", "\U0001F44F", 2),
	emoji("ok_hand", "\U0001F44C", 2),
	emoji("raised_hand", "✋", 2),
	emoji("fist", "\U0001F44A", 2),
	emoji("pray", "\U0001F64F", 2),
	emoji("muscle", "\U0001F4AA", 2),
	emoji("point_up", "\U0001F446", 2),
	emoji("point_down", "\U0001F447", 2),
	emoji("point_left", "\U0001F448", 2),
	emoji("point_right", "\U0001F449", 2),
	emoji("victory", "✌", 1),

	// symbols
	emoji("heavy_check", "✔", 1),
	emoji("heavy_x", "✖", 1),
	emoji("question", "❓", 2),
	emoji("exclamation", "❗", 2),
	emoji("bangbang", "‼", 1),
	emoji("no_entry", "⛔", 2),
	emoji("stop", "\U0001F6D1", 2),
	emoji("prohibited", "\U0001F6AB", 2),
	emoji("recycle", "♻", 1),
	emoji("infinity", "♾", 1),
	emoji("copyright", "©", 1),
	emoji("registered", "®", 1),
	emoji("tm", "™", 1),
	emoji("hundred", "\U0001F4AF", 2),
	emoji("new", "\U0001F195", 2),
	emoji("ok", "\U0001F197", 2),
	emoji("sos", "\U0001F198", 2),
	emoji("plus", "➕", 2),
	emoji("minus", "➖", 2),
	emoji("divide", "➗", 2),
	emoji("radioactive", "☢", 1),
	emoji("biohazard", "☣", 1),
	emoji("atom", "⚛", 1),
	emoji("yin_yang", "☯", 1),
	emoji("peace", "☮", 1),

	// arrows and media
	emoji("arrow_up", "⬆", 1),
	emoji("arrow_down", "⬇", 1),
	emoji("arrow_left", "⬅", 1),
	emoji("arrow_right", "➡", 1),
	emoji("arrow_up_down", "↕", 1),
	emoji("arrow_left_right", "↔", 1),
	emoji("arrows_cycle", "\U0001F504", 2),
	emoji("back", "\U0001F519", 2),
	emoji("end", "\U0001F51A", 2),
	emoji("soon", "\U0001F51C", 2),
	emoji("top", "\U0001F51D", 2),
	emoji("fast_forward", "⏩", 2),
	emoji("rewind", "⏪", 2),
	emoji("play", "▶", 1),
	emoji("pause", "⏸", 1),
	emoji("stop_button", "⏹", 1),
	emoji("record", "⏺", 1),

	// objects
	emoji("package", "\U0001F4E6", 2),
	emoji("link", "\U0001F517", 2),
	emoji("pin", "\U0001F4CC", 2),
	emoji("paperclip", "\U0001F4CE", 2),
	emoji("memo", "\U0001F4DD", 2),
	emoji("book", "\U0001F4D6", 2),
	emoji("books", "\U0001F4DA", 2),
	emoji("folder", "\U0001F4C1", 2),
	emoji("open_folder", "\U0001F4C2", 2),
	emoji("file", "\U0001F4C4", 2),
	emoji("clipboard", "\U0001F4CB", 2),
	emoji("calendar", "\U0001F4C5", 2),
	emoji("chart", "\U0001F4C8", 2),
	emoji("chart_down", "\U0001F4C9", 2),
	emoji("bar_chart", "\U0001F4CA", 2),
	emoji("mag", "\U0001F50D", 2),
	emoji("bulb", "\U0001F4A1", 2),
	emoji("battery", "\U0001F50B", 2),
	emoji("plug", "\U0001F50C", 2),
	emoji("computer", "\U0001F4BB", 2),
	emoji("keyboard", "⌨", 1),
	emoji("floppy", "\U0001F4BE", 2),
	emoji("cd", "\U0001F4BF", 2),
	emoji("phone", "\U0001F4F1", 2),
	emoji("email", "\U0001F4E7", 2),
	emoji("inbox", "\U0001F4E5", 2),
	emoji("outbox", "\U0001F4E4", 2),
	emoji("mailbox", "\U0001F4EB", 2),
	emoji("hammer", "\U0001F528", 2),
	emoji("tools", "\U0001F6E0", 1),
	emoji("shield", "\U0001F6E1", 1),
	emoji("unlock", "\U0001F513", 2),
	emoji("bomb", "\U0001F4A3", 2),
	emoji("magnet", "\U0001F9F2", 2),
	emoji("test_tube", "\U0001F9EA", 2),
	emoji("dna", "\U0001F9EC", 2),
	emoji("microscope", "\U0001F52C", 2),
	emoji("telescope", "\U0001F52D", 2),
	emoji("satellite", "\U0001F4E1", 2),
	emoji("trash", "\U0001F5D1", 1),
	emoji("hourglass_flowing", "⏳", 2),
	emoji("stopwatch", "⏱", 1),
	emoji("timer", "⏲", 1),
	emoji("money", "\U0001F4B0", 2),
	emoji("dollar", "\U0001F4B5", 2),
	emoji("gem", "\U0001F48E", 2),
	emoji("chains", "⛓", 1),
	emoji("anchor", "⚓", 2),

	// celebration
	emoji("gift", "\U0001F381", 2),
	emoji("tada", "\U0001F389", 2),
	emoji("balloon", "\U0001F388", 2),
	emoji("trophy", "\U0001F3C6", 2),
	emoji("medal", "\U0001F3C5", 2),
	emoji("first_place", "\U0001F947", 2),
	emoji("second_place", "\U0001F948", 2),
	emoji("third_place", "\U0001F949", 2),
	emoji("crown", "\U0001F451", 2),
	emoji("target", "\U0001F3AF", 2),
	emoji("dice", "\U0001F3B2", 2),
	emoji("video_game", "\U0001F3AE", 2),
	emoji("music", "\U0001F3B5", 2),
	emoji("art", "\U0001F3A8", 2),
	emoji("camera", "\U0001F4F7", 2),
	emoji("flag", "\U0001F6A9", 2),
	emoji("checkered_flag", "\U0001F3C1", 2),

	// nature
	emoji("sun", "☀", 1),
	emoji("cloud", "☁", 1),
	emoji("rain", "\U0001F327", 1),
	emoji("snowflake", "❄", 1),
	emoji("umbrella", "☔", 2),
	emoji("rainbow", "\U0001F308", 2),
	emoji("moon", "\U0001F319", 2),
	emoji("earth", "\U0001F30D", 2),
	emoji("comet", "☄", 1),
	emoji("volcano", "\U0001F30B", 2),
	emoji("ocean", "\U0001F30A", 2),
	emoji("droplet", "\U0001F4A7", 2),
	emoji("tree", "\U0001F333", 2),
	emoji("evergreen", "\U0001F332", 2),
	emoji("cactus", "\U0001F335", 2),
	emoji("seedling", "\U0001F331", 2),
	emoji("leaf", "\U0001F343", 2),
	emoji("four_leaf_clover", "\U0001F340", 2),
	emoji("rose", "\U0001F339", 2),
	emoji("sunflower", "\U0001F33B", 2),
	emoji("mushroom", "\U0001F344", 2),
	emoji("cat", "\U0001F431", 2),
	emoji("dog", "\U0001F436", 2),
	emoji("snake", "\U0001F40D", 2),
	emoji("whale", "\U0001F433", 2),
	emoji("penguin", "\U0001F427", 2),
	emoji("turtle", "\U0001F422", 2),
	emoji("rabbit", "\U0001F430", 2),
	emoji("bee", "\U0001F41D", 2),
	emoji("butterfly", "\U0001F98B", 2),
	emoji("unicorn", "\U0001F984", 2),

	// colored squares and circles
	emoji("red_box", "\U0001F7E5", 2),
	emoji("orange_box", "\U0001F7E7", 2),
	emoji("yellow_box", "\U0001F7E8", 2),
	emoji("green_box", "\U0001F7E9", 2),
	emoji("blue_box", "\U0001F7E6", 2),
	emoji("purple_box", "\U0001F7EA", 2),
	emoji("brown_box", "\U0001F7EB", 2),
	emoji("black_box", "⬛", 2),
	emoji("white_box", "⬜", 2),
	emoji("red_circle", "\U0001F534", 2),
	emoji("orange_circle", "\U0001F7E0", 2),
	emoji("yellow_circle", "\U0001F7E1", 2),
	emoji("green_circle", "\U0001F7E2", 2),
	emoji("blue_circle", "\U0001F535", 2),
	emoji("purple_circle", "\U0001F7E3", 2),
	emoji("brown_circle", "\U0001F7E4", 2),
	emoji("black_circle", "⚫", 2),
	emoji("white_circle", "⚪", 2),

	// transport
	emoji("car", "\U0001F697", 2),
	emoji("bus", "\U0001F68C", 2),
	emoji("train", "\U0001F686", 2),
	emoji("airplane", "✈", 1),
	emoji("ship", "\U0001F6A2", 2),
	emoji("bike", "\U0001F6B2", 2),
	emoji("truck", "\U0001F69A", 2),
	emoji("construction", "\U0001F6A7", 2),
	emoji("traffic_light", "\U0001F6A6", 2),
	emoji("fuel", "⛽", 2),

	// misc
	emoji("coffee", "☕", 2),
	emoji("beer", "\U0001F37A", 2),
	emoji("pizza", "\U0001F355", 2),
	emoji("cake", "\U0001F370", 2),
	emoji("apple", "\U0001F34E", 2),
	emoji("eyes", "\U0001F440", 2),
	emoji("brain", "\U0001F9E0", 2),
	emoji("speech", "\U0001F4AC", 2),
	emoji("thought", "\U0001F4AD", 2),
	emoji("zzz", "\U0001F4A4", 2),
	emoji("boom", "\U0001F4A5", 2),
	emoji("sweat", "\U0001F4A6", 2),
	emoji("dash", "\U0001F4A8", 2),
	emoji("hot_pepper", "\U0001F336", 1),
	emoji("ice", "\U0001F9CA", 2),
}

// EmojiTable resolves shortcode names. The zero value and a nil table
// resolve nothing.
type EmojiTable struct {
	groups [][]Emoji
}

// NewEmojiTable returns the shortcode table for f, or nil when emoji
// support is off.
func NewEmojiTable(f Features) *EmojiTable {
	if !f.Emoji {
		return nil
	}
	t := &EmojiTable{groups: [][]Emoji{coreEmoji}}
	if f.ExtendedEmoji {
		t.groups = append(t.groups, extendedEmoji)
	}
	return t
}

var defaultEmoji = NewEmojiTable(AllFeatures())

// DefaultEmoji returns the table with core and extended shortcodes.
func DefaultEmoji() *EmojiTable { return defaultEmoji }

// LookupShortcode matches name against the table ignoring ASCII case.
// Unknown names return nil.
func (t *EmojiTable) LookupShortcode(name []byte) *Emoji {
	if t == nil {
		return nil
	}
	for _, g := range t.groups {
		for i := range g {
			if len(name) == len(g[i].Name) && equalFoldASCII(name, g[i].Name) {
				return &g[i]
			}
		}
	}
	return nil
}

// All lists the entries in table order.
func (t *EmojiTable) All() []*Emoji {
	if t == nil {
		return nil
	}
	var out []*Emoji
	for _, g := range t.groups {
		for i := range g {
			out = append(out, &g[i])
		}
	}
	return out
}

// Len is the number of entries.
func (t *EmojiTable) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, g := range t.groups {
		n += len(g)
	}
	return n
}

func equalFoldASCII(a []byte, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
