package symbols

// Render draws a row of digits as five lines of ASCII art:
//
//	  -     -     -     -
//	 | |   | |   | |   | |
//	  -     -     -     -
//	 | |   | |   | |   | |
//	  -  .  -  .  -  .  -  .
func Render(codes []Code) []string {
	lines := make([]string, 5)
	for _, c := range codes {
		// TOP
		if c.Lit(SegTop) {
			lines[0] += "  -   "
		} else {
			lines[0] += "      "
		}
		// TOPM
		lines[1] += side(c, SegTopLeft, SegTopRight)
		// MID
		if c.Lit(SegMiddle) {
			lines[2] += "  -   "
		} else {
			lines[2] += "      "
		}
		// BOTM
		lines[3] += side(c, SegBottomLeft, SegBottomRight)
		// BOT
		if c.Lit(SegBottom) {
			lines[4] += "  -  "
		} else {
			lines[4] += "     "
		}
		if c.Lit(SegDot) {
			lines[4] += "."
		} else {
			lines[4] += " "
		}
	}
	return lines
}

func side(c Code, left, right Code) string {
	line := "  "
	if c.Lit(left) {
		line = " |"
	}
	if c.Lit(right) {
		return line + " |  "
	}
	return line + "    "
}
