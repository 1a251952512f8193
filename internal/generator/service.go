package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shinobirpg/shinobi-bot-discord/internal/catalog"
	"github.com/shinobirpg/shinobi-bot-discord/internal/dice"
	apperrors "github.com/shinobirpg/shinobi-bot-discord/internal/errors"
	"github.com/shinobirpg/shinobi-bot-discord/internal/selection"
)

// feudTableName marks the background entry reserved as the feud roll table.
// It is excluded from normal background selection.
const feudTableName = "Таблица вражды"

// meleeSkills are the skill names that let a character carry a light backup
// weapon instead of a blade.
var meleeSkills = map[string]struct{}{
	"Айкидо":  {},
	"Будзюцу": {},
	"Чанбара": {},
	"Иайдо":   {},
	"Карате":  {},
	"Некоде":  {},
}

// supportSkillCategories maps trigger skills to the gear categories they
// unlock, in priority order.
var supportSkillCategories = []struct {
	Skill      string
	Categories []catalog.Category
}{
	{Skill: "Киберпространство", Categories: []catalog.Category{catalog.CategoryCyberdeck, catalog.CategoryProgram}},
	{Skill: "Контрбезопасность", Categories: []catalog.Category{catalog.CategorySecurityGear}},
	{Skill: "Технологии", Categories: []catalog.Category{catalog.CategoryTech}},
	{Skill: "Медицина", Categories: []catalog.Category{catalog.CategoryMedical}},
	{Skill: "Взрывчатка", Categories: []catalog.Category{catalog.CategoryExplosives}},
}

// defaultSupportCategories apply when none of the trigger skills were rolled.
var defaultSupportCategories = []catalog.Category{catalog.CategoryTech, catalog.CategoryComputer}

// Service generates character sheets from a rule catalog
type Service interface {
	// Generate assembles one character sheet. It fails only when a mandatory
	// category (names, concept, background, motivation, clothing) has no
	// candidates; optional categories degrade to empty fields.
	Generate() (*CharacterSheet, error)
}

type service struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	roller  dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Catalog is the loaded rule catalog. Required.
	Catalog *catalog.Catalog

	// Rand drives every selection. Optional; defaults to a time-seeded
	// source. Use one seeded source per generation stream for reproducible
	// sheets.
	Rand *rand.Rand

	// Roller provides the augmentation d6. Optional; defaults to a roller
	// over Rand, which keeps all draws in a single sequence.
	Roller dice.Roller
}

// NewService creates a new generator service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		catalog: cfg.Catalog,
		rng:     cfg.Rand,
		roller:  cfg.Roller,
	}

	if svc.rng == nil {
		svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if svc.roller == nil {
		svc.roller = dice.NewRoller(svc.rng)
	}

	return svc
}

// Generate implements Service.Generate. The draw order below is fixed:
// reordering the steps changes every sheet produced from a given seed.
func (s *service) Generate() (*CharacterSheet, error) {
	if s.catalog == nil {
		return nil, apperrors.Internal("generator has no catalog")
	}

	nameEntry, gender, err := s.chooseName()
	if err != nil {
		return nil, err
	}

	concept, err := s.pickRequiredFeat(catalog.CategoryConcept)
	if err != nil {
		return nil, err
	}

	background, feud, err := s.chooseBackground()
	if err != nil {
		return nil, err
	}

	motivation, err := s.pickRequiredFeat(catalog.CategoryMotivation)
	if err != nil {
		return nil, err
	}

	clothing, err := s.pickRequiredFeat(catalog.CategoryClothing)
	if err != nil {
		return nil, err
	}

	features := selection.PickUnique(s.rng, s.catalog.FeatsByType(catalog.CategoryFeatures), 2)
	problems := selection.PickUnique(s.rng, s.catalog.FeatsByType(catalog.CategoryProblems), 2)

	augmentationRoll, augmentations, err := s.rollAugmentations()
	if err != nil {
		return nil, err
	}

	skills := selection.PickUnique(s.rng, s.catalog.Skills(), 6)
	rank := s.startingRank()

	armor := s.pickItem(catalog.CategoryArmor)
	primaryWeapon, backupWeapon := s.chooseWeapons(skills)
	supportItems := s.chooseSupportItems(skills)
	lifestyle := s.pickItem(catalog.CategoryLifestyle)
	transport := s.pickItem(catalog.CategoryTransport)

	return &CharacterSheet{
		Name:             nameEntry.Name,
		Gender:           gender,
		NameMeaning:      nameEntry.Description,
		Concept:          concept,
		Background:       background,
		Feud:             feud,
		Motivation:       motivation,
		Clothing:         clothing,
		Features:         features,
		Problems:         problems,
		Augmentations:    augmentations,
		AugmentationRoll: augmentationRoll,
		Skills:           skills,
		Rank:             rank,
		Armor:            armor,
		PrimaryWeapon:    primaryWeapon,
		BackupWeapon:     backupWeapon,
		SupportItems:     supportItems,
		Lifestyle:        lifestyle,
		Transport:        transport,
	}, nil
}

// chooseName rolls a gender, then picks a name from the matching pool.
// A rolled male with an empty male pool falls back to the female pool and
// records female; when only the male pool has entries the pick comes from
// there under whatever gender was rolled.
func (s *service) chooseName() (catalog.Feat, Gender, error) {
	maleNames := s.catalog.FeatsByType(catalog.CategoryMaleNames)
	femaleNames := s.catalog.FeatsByType(catalog.CategoryFemaleNames)

	gender := GenderMale
	if s.rng.Intn(2) == 1 {
		gender = GenderFemale
	}

	if gender == GenderMale {
		if name, ok := selection.PickOne(s.rng, maleNames); ok {
			return name, GenderMale, nil
		}
	}
	if name, ok := selection.PickOne(s.rng, femaleNames); ok {
		return name, GenderFemale, nil
	}
	if name, ok := selection.PickOne(s.rng, maleNames); ok {
		// Rolled female but only male names exist; keep the rolled gender.
		return name, gender, nil
	}

	return catalog.Feat{}, gender, apperrors.NotFoundf(
		"no candidates in category %q or %q", catalog.CategoryMaleNames, catalog.CategoryFemaleNames)
}

// chooseBackground picks a background excluding the feud table sentinel.
// Backgrounds whose name demands a feud additionally pick one feud entry.
func (s *service) chooseBackground() (catalog.Feat, *catalog.Feat, error) {
	all := s.catalog.FeatsByType(catalog.CategoryBackground)

	var backgrounds, feudTable []catalog.Feat
	for _, feat := range all {
		if strings.TrimSpace(feat.Name) == feudTableName {
			feudTable = append(feudTable, feat)
		} else {
			backgrounds = append(backgrounds, feat)
		}
	}

	background, ok := selection.PickOne(s.rng, backgrounds)
	if !ok {
		return catalog.Feat{}, nil, apperrors.NotFoundf(
			"no candidates in category %q", catalog.CategoryBackground)
	}

	nameLower := strings.ToLower(background.Name)
	if strings.Contains(nameLower, "нужна") && !strings.Contains(nameLower, "не нужна") {
		if feud, picked := selection.PickOne(s.rng, feudTable); picked {
			return background, &feud, nil
		}
	}

	return background, nil, nil
}

// rollAugmentations rolls the d6 and draws the planned number of feats from
// each augmentation class. Missing classes contribute nothing.
func (s *service) rollAugmentations() (int, []catalog.Feat, error) {
	result, err := s.roller.Roll(1, 6, 0)
	if err != nil {
		return 0, nil, apperrors.Wrap(err, "roll augmentation die")
	}
	roll := result.Rolls[0]

	var augmentations []catalog.Feat
	for _, entry := range AugmentationPlan(roll) {
		pool := s.catalog.FeatsByType(catalog.AugmentationCategory(entry.Class))
		augmentations = append(augmentations, selection.PickUnique(s.rng, pool, entry.Count)...)
	}

	return roll, augmentations, nil
}

// chooseWeapons derives weapon picks from the rolled skills. Both weapon
// skill names are matched in their ё and е spellings.
func (s *service) chooseWeapons(skills []catalog.Skill) (*catalog.InventoryItem, *catalog.InventoryItem) {
	names := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		names[skill.Name] = struct{}{}
	}

	heavy := hasAny(names, "Тяжёлое оружие", "Тяжелое оружие")
	melee := false
	for name := range meleeSkills {
		if _, ok := names[name]; ok {
			melee = true
			break
		}
	}

	var primary, backup *catalog.InventoryItem
	if heavy {
		primary = s.pickItem(catalog.CategoryHeavyWeapon)
	}
	if primary == nil {
		primary = s.pickItem(catalog.CategoryLightWeapon)
	}

	if melee {
		backup = s.pickItem(catalog.CategoryLightWeapon)
	}
	if backup == nil {
		backup = s.pickItem(catalog.CategoryMeleeWeapon)
	}

	return primary, backup
}

// chooseSupportItems accumulates gear categories unlocked by the rolled
// skills, without duplicates and in trigger order, then picks at most one
// item per category.
func (s *service) chooseSupportItems(skills []catalog.Skill) []catalog.InventoryItem {
	names := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		names[skill.Name] = struct{}{}
	}

	var categories []catalog.Category
	seen := make(map[catalog.Category]struct{})
	appendCategories := func(toAdd ...catalog.Category) {
		for _, category := range toAdd {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}

	for _, mapping := range supportSkillCategories {
		if _, ok := names[mapping.Skill]; ok {
			appendCategories(mapping.Categories...)
		}
	}
	if len(categories) == 0 {
		appendCategories(defaultSupportCategories...)
	}

	var support []catalog.InventoryItem
	for _, category := range categories {
		if item := s.pickItem(category); item != nil {
			support = append(support, *item)
		}
	}
	return support
}

// startingRank returns the rank with the lowest id, or an all-empty rank
// when the rank table is empty.
func (s *service) startingRank() catalog.Rank {
	ranks := s.catalog.Ranks()
	if len(ranks) == 0 {
		return catalog.Rank{}
	}

	starting := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.ID < starting.ID {
			starting = rank
		}
	}
	return starting
}

func (s *service) pickRequiredFeat(category catalog.Category) (catalog.Feat, error) {
	feat, ok := selection.PickOne(s.rng, s.catalog.FeatsByType(category))
	if !ok {
		return catalog.Feat{}, apperrors.NotFoundf("no candidates in category %q", category)
	}
	return feat, nil
}

func (s *service) pickItem(category catalog.Category) *catalog.InventoryItem {
	item, ok := selection.PickOne(s.rng, s.catalog.InventoryByType(category))
	if !ok {
		return nil
	}
	return &item
}

func hasAny(names map[string]struct{}, candidates ...string) bool {
	for _, candidate := range candidates {
		if _, ok := names[candidate]; ok {
			return true
		}
	}
	return false
}
