package render

import (
	"strings"
	"unicode/utf8"

	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
)

// Width is the total column width of the boxed layout, borders included.
// Every line of Text is exactly this many runes wide.
const Width = 60

const (
	labelWidth = 18
	// interiorWidth is the room between "║ " and " ║".
	interiorWidth = Width - 4
	// valueWidth is the room left for a header value after its label.
	valueWidth = Width - labelWidth - 5
)

var (
	borderTop    = "╔" + strings.Repeat("═", Width-2) + "╗"
	borderMid    = "╠" + strings.Repeat("═", Width-2) + "╣"
	borderSep    = "╟" + strings.Repeat("─", Width-2) + "╢"
	borderBottom = "╚" + strings.Repeat("═", Width-2) + "╝"
)

// Text renders the sheet as a fixed-width boxed dossier. Long values wrap
// onto continuation lines, so the width invariant holds for any input.
func Text(sheet *generator.CharacterSheet) string {
	lines := []string{
		borderTop,
		padRight("║ SHINOBI // CYBERPUNK DOSSIER", Width-1) + "║",
		borderMid,
	}
	lines = append(lines, headerLine("Имя", sheet.Name)...)
	lines = append(lines, headerLine("Пол", GenderLabel(sheet.Gender))...)
	lines = append(lines, headerLine("Значение", sheet.NameMeaning)...)
	lines = append(lines, headerLine("Концепт", sheet.Concept.Name)...)
	lines = append(lines, borderSep)

	sections := BuildSections(sheet)
	for i, section := range sections {
		lines = append(lines, sectionBlock(section)...)
		if i < len(sections)-1 {
			lines = append(lines, borderSep)
		}
	}
	lines = append(lines, borderBottom)

	return strings.Join(lines, "\n")
}

// headerLine lays out one "label: value" header row, wrapping the value and
// leaving the label column blank on continuation lines.
func headerLine(label, value string) []string {
	label += ":"
	chunks := wrap(Normalize(value), valueWidth)

	lines := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		field := ""
		if i == 0 {
			field = label
		}
		lines = append(lines, "║ "+padRight(field, labelWidth)+" "+padRight(chunk, valueWidth)+" ║")
	}
	return lines
}

// sectionBlock lays out a section title followed by its bulleted,
// word-wrapped lines.
func sectionBlock(section Section) []string {
	lines := []string{"║ " + padRight(section.Title, interiorWidth) + " ║"}
	for _, row := range section.Lines {
		for _, chunk := range wrap("• "+row, interiorWidth) {
			lines = append(lines, "║ "+padRight(chunk, interiorWidth)+" ║")
		}
	}
	return lines
}

// wrap word-wraps text to at most limit runes per line. Words longer than
// the limit are hard-broken. Blank text yields a single empty line.
func wrap(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for utf8.RuneCountInString(word) > limit {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:limit]))
			word = string(runes[limit:])
		}
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= limit:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func padRight(text string, width int) string {
	if n := utf8.RuneCountInString(text); n < width {
		return text + strings.Repeat(" ", width-n)
	}
	return text
}
