// Package markup renders inline markup into ANSI escape sequences.
//
// The grammar is small and byte oriented:
//
//	[red]text[/]              foreground color, close everything
//	[bold red on blue]...     styles, foreground and " on " background
//	[/red] [/bold]            selective close; the rest is re-emitted
//	[fg:208] [bg:17]          256-color palette indices, clamped to 0..255
//	[rainbow]...[/rainbow]    per-character rainbow
//	[gradient red blue]...    per-character 24-bit gradient
//	:fire: :U-2764:           emoji shortcode and codepoint escape
//	[[ ]] ::                  literal bracket and colon
//
// Tags do not nest. Each tag overwrites the single active foreground,
// background and style set; a close tag that names something other than
// what is active changes nothing apart from the reset it emits.
//
// Output goes through a PutFunc one byte at a time so the same Renderer
// drives a terminal, a buffer or a serial port. Rendering allocates
// nothing on its own; Format uses the buffer handed to Init.
package markup
