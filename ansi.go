package vid2ascii

import (
	"strconv"
	"strings"
)

const (
	// fgReset restores white text after a foreground-colored row.
	fgReset = ESC + "[38;2;255;255;255m"
	// bgReset restores white text on black after a background-colored row.
	bgReset = ESC + "[38;2;255;255;255;48;2;0;0;0m"
)

// writeTruecolor appends a 24-bit SGR sequence. selector is "38" for
// foreground and "48" for background.
func writeTruecolor(sb *strings.Builder, selector string, c RGB) {
	sb.WriteString(ESC)
	sb.WriteByte('[')
	sb.WriteString(selector)
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
}

// rowReset returns what ends a rendered row before the newline.
func rowReset(mode ColorMode) string {
	switch mode {
	case BackgroundColor:
		return bgReset
	case ForegroundColor:
		return fgReset
	}
	return ""
}
