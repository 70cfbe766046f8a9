package docx

// Callout colours are enum values of the document API; the maps below resolve
// them to the hex values used by the desktop editor.

var calloutBackgroundColors = map[int]string{
	1:  "#fef2f2",
	2:  "#fff7ed",
	3:  "#fefce8",
	4:  "#f0fdf4",
	5:  "#eff6ff",
	6:  "#faf5ff",
	7:  "#f9fafb",
	8:  "#fecaca",
	9:  "#fed7aa",
	10: "#fef08a",
	11: "#bbf7d0",
	12: "#bfdbfe",
	13: "#e9d5ff",
	14: "#e5e7eb",
}

var calloutBorderColors = map[int]string{
	1: "#fecaca",
	2: "#fed7aa",
	3: "#fef08a",
	4: "#bbf7d0",
	5: "#bfdbfe",
	6: "#e9d5ff",
	7: "#e5e7eb",
}

var fontColors = map[int]string{
	1: "#ef4444",
	2: "#f97316",
	3: "#eab308",
	4: "#22c55e",
	5: "#3b82f6",
	6: "#a855f7",
	7: "#6b7280",
}

// DefaultFontColor is used when a callout text colour has no known value.
const DefaultFontColor = "#2222"

// CalloutBackgroundColor resolves a background colour enum.
func CalloutBackgroundColor(value int) (string, bool) {
	color, ok := calloutBackgroundColors[value]
	return color, ok
}

// CalloutBorderColor resolves a border colour enum.
func CalloutBorderColor(value int) (string, bool) {
	color, ok := calloutBorderColors[value]
	return color, ok
}

// FontColor resolves a font colour enum.
func FontColor(value int) (string, bool) {
	color, ok := fontColors[value]
	return color, ok
}
