package catalog

import (
	"io"
	"strconv"
	"strings"

	apperrors "github.com/shinobirpg/shinobi-bot-discord/internal/errors"
)

// Section headings of the rule catalog document. They must match the source
// exactly, including the table identifiers in parentheses.
const (
	sectionFeats     = "Черты и таблицы (shinobiSite_feat)"
	sectionInventory = "Снаряжение и услуги (shinobiSite_inventory)"
	sectionSkills    = "Навыки (shinobiSite_skill)"
	sectionRanks     = "Ранги (shinobiSite_rang)"
)

// Feat is a single entry of the feat table: names, concepts, backgrounds,
// augmentations and the other roll tables all live there, distinguished by
// their Type tag.
type Feat struct {
	ID          int
	Name        string
	Description string
	Type        string
	RollCode    string
}

// InventoryItem is a single entry of the gear table. Price is nil when the
// catalog leaves it blank or non-numeric.
type InventoryItem struct {
	ID          int
	Name        string
	Description string
	Type        string
	Price       *int
}

// Skill is a single entry of the skill table.
type Skill struct {
	ID          int
	Name        string
	Description string
	RollCode    string
}

// Rank is a single entry of the rank progression table.
type Rank struct {
	ID        int
	Name      string
	Benefit   string
	Mercenary string
	XPNeeded  string
}

// Catalog is the typed, read-only view over the parsed rule catalog.
// Records are never mutated after construction.
type Catalog struct {
	feats     []Feat
	inventory []InventoryItem
	skills    []Skill
	ranks     []Rank
}

// New parses the full rule catalog text into a Catalog. A record with a
// non-numeric ID makes the whole load fail with a validation error; the
// catalog either loads completely or not at all.
func New(r io.Reader) (*Catalog, error) {
	tables, err := ParseTables(r)
	if err != nil {
		return nil, apperrors.Wrap(err, "read rule catalog")
	}

	c := &Catalog{}

	for _, row := range tables[sectionFeats] {
		id, err := parseID(row, sectionFeats)
		if err != nil {
			return nil, err
		}
		c.feats = append(c.feats, Feat{
			ID:          id,
			Name:        row["name"],
			Description: row["description"],
			Type:        row["type"],
			RollCode:    row["roll_code"],
		})
	}

	for _, row := range tables[sectionInventory] {
		id, err := parseID(row, sectionInventory)
		if err != nil {
			return nil, err
		}
		c.inventory = append(c.inventory, InventoryItem{
			ID:          id,
			Name:        row["name"],
			Description: row["description"],
			Type:        row["type"],
			Price:       parseOptionalInt(row["price"]),
		})
	}

	for _, row := range tables[sectionSkills] {
		id, err := parseID(row, sectionSkills)
		if err != nil {
			return nil, err
		}
		c.skills = append(c.skills, Skill{
			ID:          id,
			Name:        row["name"],
			Description: row["description"],
			RollCode:    row["roll_code"],
		})
	}

	for _, row := range tables[sectionRanks] {
		id, err := parseID(row, sectionRanks)
		if err != nil {
			return nil, err
		}
		c.ranks = append(c.ranks, Rank{
			ID:        id,
			Name:      row["name"],
			Benefit:   row["benefit"],
			Mercenary: row["mercenary"],
			XPNeeded:  row["xp_needed"],
		})
	}

	return c, nil
}

// FeatsByType returns the feats with exactly the given category, in source
// order. An unknown category yields an empty slice, never an error.
func (c *Catalog) FeatsByType(category Category) []Feat {
	var feats []Feat
	for _, feat := range c.feats {
		if feat.Type == string(category) {
			feats = append(feats, feat)
		}
	}
	return feats
}

// FeatsByTypePrefix returns the feats whose category starts with prefix.
func (c *Catalog) FeatsByTypePrefix(prefix string) []Feat {
	var feats []Feat
	for _, feat := range c.feats {
		if strings.HasPrefix(feat.Type, prefix) {
			feats = append(feats, feat)
		}
	}
	return feats
}

// FeatsWithNamePrefix returns the feats of the given category whose name
// starts with prefix.
func (c *Catalog) FeatsWithNamePrefix(category Category, prefix string) []Feat {
	var feats []Feat
	for _, feat := range c.feats {
		if feat.Type == string(category) && strings.HasPrefix(feat.Name, prefix) {
			feats = append(feats, feat)
		}
	}
	return feats
}

// InventoryByType returns the inventory items with exactly the given
// category, in source order.
func (c *Catalog) InventoryByType(category Category) []InventoryItem {
	var items []InventoryItem
	for _, item := range c.inventory {
		if item.Type == string(category) {
			items = append(items, item)
		}
	}
	return items
}

// Skills returns all skills in source order. Callers must not modify the
// returned slice.
func (c *Catalog) Skills() []Skill {
	return c.skills
}

// Ranks returns all ranks in source order. Callers must not modify the
// returned slice.
func (c *Catalog) Ranks() []Rank {
	return c.ranks
}

func parseID(row Row, section string) (int, error) {
	raw := row["ID"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validationf("malformed catalog: non-numeric id %q", raw).
			WithMeta("section", section)
	}
	return id, nil
}

func parseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
