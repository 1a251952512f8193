package generator

import "github.com/shinobirpg/shinobi-bot-discord/internal/catalog"

// Gender is the single-letter gender tag used by the name tables.
type Gender string

const (
	GenderMale   Gender = "М"
	GenderFemale Gender = "Ж"
)

// CharacterSheet is the result of one generation run. Pointer fields are nil
// when their category pool was empty; every non-nil reference points at a
// real catalog record. The sheet is immutable once returned.
type CharacterSheet struct {
	Name        string
	Gender      Gender
	NameMeaning string

	Concept    catalog.Feat
	Background catalog.Feat
	Feud       *catalog.Feat
	Motivation catalog.Feat
	Clothing   catalog.Feat
	Features   []catalog.Feat
	Problems   []catalog.Feat

	Augmentations    []catalog.Feat
	AugmentationRoll int

	Skills []catalog.Skill
	Rank   catalog.Rank

	Armor         *catalog.InventoryItem
	PrimaryWeapon *catalog.InventoryItem
	BackupWeapon  *catalog.InventoryItem
	SupportItems  []catalog.InventoryItem
	Lifestyle     *catalog.InventoryItem
	Transport     *catalog.InventoryItem
}
