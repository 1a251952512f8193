// Package render turns a generated character sheet into its two textual
// representations: a fixed-width boxed layout for chat code blocks and a
// styled HTML dossier. Both consume the same section derivation, so the
// layouts can never drift apart on content.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shinobirpg/shinobi-bot-discord/internal/catalog"
	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
)

// placeholder substitutes absent or blank text everywhere in the output.
const placeholder = "—"

// pricePrinter groups thousands the Russian way; Normalize later collapses
// the locale's no-break spaces into plain ones.
var pricePrinter = message.NewPrinter(language.Russian)

// Section is one display block of the sheet: a stable key, a human title
// and at least one pre-normalized line.
type Section struct {
	Key   string
	Title string
	Lines []string
}

// InfoRow is one entry of the header summary (name, gender and so on).
type InfoRow struct {
	Label string
	Value string
}

// Normalize collapses internal whitespace and substitutes the placeholder
// for blank text.
func Normalize(text string) string {
	collapsed := collapseWhitespace(text)
	if collapsed == "" {
		return placeholder
	}
	return collapsed
}

func normalizeFallback(text, fallback string) string {
	collapsed := collapseWhitespace(text)
	if collapsed == "" {
		return fallback
	}
	return collapsed
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// GenderLabel spells out a gender tag for display.
func GenderLabel(gender generator.Gender) string {
	if gender == generator.GenderFemale {
		return "Женский"
	}
	return "Мужской"
}

// InfoRows returns the header summary rows shared by both layouts.
func InfoRows(sheet *generator.CharacterSheet) []InfoRow {
	return []InfoRow{
		{Label: "Имя", Value: Normalize(sheet.Name)},
		{Label: "Пол", Value: GenderLabel(sheet.Gender)},
		{Label: "Значение имени", Value: Normalize(sheet.NameMeaning)},
		{Label: "Концепт", Value: Normalize(sheet.Concept.Name)},
	}
}

// BuildSections renders every field group of the sheet into display lines.
// Each section carries at least one line; an empty group degrades to the
// placeholder instead of vanishing.
func BuildSections(sheet *generator.CharacterSheet) []Section {
	biography := describeFeat(&sheet.Background)
	if sheet.Feud != nil {
		feudText := sheet.Feud.Description
		if feudText == "" {
			feudText = sheet.Feud.Name
		}
		biography = fmt.Sprintf("%s; Вражда: %s", biography, Normalize(feudText))
	}

	appearance := []string{describeFeat(&sheet.Clothing)}
	for i := range sheet.Features {
		appearance = append(appearance, describeFeat(&sheet.Features[i]))
	}

	var personality []string
	for i := range sheet.Problems {
		personality = append(personality, describeFeat(&sheet.Problems[i]))
	}

	augmentations := []string{fmt.Sprintf("Бросок d6 на аугментации: %d", sheet.AugmentationRoll)}
	for i := range sheet.Augmentations {
		augmentations = append(augmentations, describeFeat(&sheet.Augmentations[i]))
	}

	var skills []string
	for _, skill := range sheet.Skills {
		skills = append(skills, describeSkill(skill))
	}

	gear := []string{
		Normalize("Броня: " + describeItem(sheet.Armor)),
		Normalize("Основное оружие: " + describeItem(sheet.PrimaryWeapon)),
		Normalize("Запасное оружие: " + describeItem(sheet.BackupWeapon)),
	}
	for i := range sheet.SupportItems {
		gear = append(gear, Normalize(fmt.Sprintf("Поддержка %d: %s", i+1, describeItem(&sheet.SupportItems[i]))))
	}

	rank := Normalize(fmt.Sprintf("%s (бонус: %s, опыт: %s)",
		Normalize(sheet.Rank.Name),
		Normalize(sheet.Rank.Benefit),
		normalizeFallback(sheet.Rank.XPNeeded, "0")))

	sections := []Section{
		{Key: "biography", Title: "Биография", Lines: []string{biography}},
		{Key: "motivation", Title: "Мотивация", Lines: []string{describeFeat(&sheet.Motivation)}},
		{Key: "appearance", Title: "Внешность", Lines: appearance},
		{Key: "personality", Title: "Черты характера", Lines: personality},
		{Key: "augmentations", Title: "Аугментации", Lines: augmentations},
		{Key: "skills", Title: "Навыки", Lines: skills},
		{Key: "gear", Title: "Снаряжение", Lines: gear},
		{Key: "lifestyle", Title: "Образ жизни", Lines: []string{describeItem(sheet.Lifestyle)}},
		{Key: "transport", Title: "Транспорт", Lines: []string{describeItem(sheet.Transport)}},
		{Key: "rank", Title: "Ранг", Lines: []string{rank}},
	}

	for i := range sections {
		if len(sections[i].Lines) == 0 {
			sections[i].Lines = []string{placeholder}
		}
	}
	return sections
}

// describeFeat composes "name — description", dropping the name when the
// description already repeats it or when the entry is itself a roll table.
func describeFeat(feat *catalog.Feat) string {
	if feat == nil {
		return placeholder
	}

	description := collapseWhitespace(feat.Description)
	if description == "-" || description == "—" {
		description = ""
	}
	name := collapseWhitespace(feat.Name)

	if description == "" {
		return Normalize(name)
	}
	if name == "" || strings.HasPrefix(strings.ToLower(name), "таблица") {
		return Normalize(description)
	}
	if strings.HasPrefix(strings.ToLower(description), strings.ToLower(name)) {
		return Normalize(description)
	}
	return Normalize(name + " — " + description)
}

func describeItem(item *catalog.InventoryItem) string {
	if item == nil {
		return placeholder
	}

	parts := []string{Normalize(item.Name)}
	description := collapseWhitespace(item.Description)
	if description != "" && description != "-" && description != "—" {
		parts = append(parts, description)
	}
	if item.Price != nil {
		parts = append(parts, pricePrinter.Sprintf("¥%d", *item.Price))
	}
	return Normalize(strings.Join(parts, " — "))
}

func describeSkill(skill catalog.Skill) string {
	name := Normalize(skill.Name)
	description := Normalize(skill.Description)
	if description == placeholder {
		return name
	}
	if strings.HasPrefix(strings.ToLower(description), strings.ToLower(name)) {
		return description
	}
	return name + " — " + description
}
