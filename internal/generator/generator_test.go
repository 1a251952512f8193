package generator_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/shinobirpg/shinobi-bot-discord/internal/catalog"
	"github.com/shinobirpg/shinobi-bot-discord/internal/dice"
	apperrors "github.com/shinobirpg/shinobi-bot-discord/internal/errors"
	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featsHeader = `## Черты и таблицы (shinobiSite_feat)

| ID | name | description | type | roll_code |
| --- | --- | --- | --- | --- |
`

// fullCatalogDoc populates every category the generator touches. The skill
// table holds exactly six skills, so every generation picks all of them and
// the skill-driven gear choices are predictable.
const fullCatalogDoc = featsHeader + `| 1 | Кэнши | Мастер меча | Мужские имена | |
| 2 | Акико | Дитя осени | Женские имена | |
| 3 | Инфильтратор | Проникает куда не просят | Концепт | |
| 4 | Корпоративный беглец | Сбежал из корпорации с её секретами | Предыстория | |
| 5 | Таблица вражды | Клан Арасака охотится за вами | Предыстория | |
| 6 | Месть | Отомстить бывшему нанимателю | Мотивация | |
| 7 | Уличный стиль | Потёртая куртка и неон | Одежда | |
| 8 | Шрам через бровь | | Особые черты | |
| 9 | Татуировка клана | | Особые черты | |
| 10 | Паранойя | | Личностные проблемы | |
| 11 | Долги | | Личностные проблемы | |
| 12 | Хромированная рука | | Аугментации класса А | |
| 13 | Встроенная кибердека | | Аугментации класса B | |
| 14 | Оптика ночного зрения | | Аугментации класса C | |
| 15 | Подкожная броня | | Аугментации класса C | |
| 16 | Дымовые железы | | Аугментации класса D | |
| 17 | Выдвижные когти | | Аугментации класса D | |
| 18 | Усиленные сухожилия | | Аугментации класса D | |
| 19 | Фильтры лёгких | | Аугментации класса D | |

## Снаряжение и услуги (shinobiSite_inventory)

| ID | name | description | type | price |
| --- | --- | --- | --- | --- |
| 101 | Бронежилет | Лёгкая броня | Броня | 1000 |
| 102 | Миниган | | Тяжелое оружие | 15000 |
| 103 | Пистолет | | Лёгкое оружие | 500 |
| 104 | Катана | | Холодное оружие | 2000 |
| 105 | Набор инструментов | | Техника | |
| 106 | Аптечка | | Медицинские товары и услуги | 300 |
| 107 | Ноутбук | | Компьютер | 3000 |
| 108 | Капсула в отеле | | Образ жизни | 200 |
| 109 | Мотоцикл | | Транспорт | 5000 |

## Навыки (shinobiSite_skill)

| ID | name | description | roll_code |
| --- | --- | --- | --- |
| 201 | Карате | Удары руками и ногами | |
| 202 | Медицина | Первая помощь | |
| 203 | Технологии | Ремонт и наладка | |
| 204 | Стелс | Бесшумное перемещение | |
| 205 | Взлом | Обход замков | |
| 206 | Тяжёлое оружие | Пулемёты и ракетомёты | |

## Ранги (shinobiSite_rang)

| ID | name | benefit | mercenary | xp_needed |
| --- | --- | --- | --- | --- |
| 302 | Тюнин | +2 к навыку | да | 100 |
| 301 | Генин | +1 к навыку | нет | 0 |
`

func testCatalog(t *testing.T, doc string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(strings.NewReader(doc))
	require.NoError(t, err)
	return c
}

func seededService(c *catalog.Catalog, seed int64) generator.Service {
	return generator.NewService(&generator.ServiceConfig{
		Catalog: c,
		Rand:    rand.New(rand.NewSource(seed)),
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	c := testCatalog(t, fullCatalogDoc)

	first, err := seededService(c, 42).Generate()
	require.NoError(t, err)
	second, err := seededService(c, 42).Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_FullCatalog(t *testing.T) {
	c := testCatalog(t, fullCatalogDoc)

	sheet, err := seededService(c, 7).Generate()
	require.NoError(t, err)

	assert.NotEmpty(t, sheet.Name)
	assert.Contains(t, []generator.Gender{generator.GenderMale, generator.GenderFemale}, sheet.Gender)
	assert.Equal(t, "Инфильтратор", sheet.Concept.Name)

	// The only background besides the feud table sentinel
	assert.Equal(t, "Корпоративный беглец", sheet.Background.Name)
	assert.Nil(t, sheet.Feud)

	assert.Equal(t, "Месть", sheet.Motivation.Name)
	assert.Equal(t, "Уличный стиль", sheet.Clothing.Name)
	assert.Len(t, sheet.Features, 2)
	assert.Len(t, sheet.Problems, 2)

	assert.GreaterOrEqual(t, sheet.AugmentationRoll, 1)
	assert.LessOrEqual(t, sheet.AugmentationRoll, 6)
	assert.NotEmpty(t, sheet.Augmentations)

	require.Len(t, sheet.Skills, 6)
	names := make(map[string]struct{})
	for _, skill := range sheet.Skills {
		names[skill.Name] = struct{}{}
	}
	assert.Len(t, names, 6, "skills must be unique")

	assert.Equal(t, "Генин", sheet.Rank.Name, "lowest id wins regardless of table order")

	require.NotNil(t, sheet.Armor)
	assert.Equal(t, "Бронежилет", sheet.Armor.Name)

	// All six skills are always picked, so the heavy-weapon skill forces the
	// heavy primary and the karate skill the light backup
	require.NotNil(t, sheet.PrimaryWeapon)
	assert.Equal(t, "Миниган", sheet.PrimaryWeapon.Name)
	require.NotNil(t, sheet.BackupWeapon)
	assert.Equal(t, "Пистолет", sheet.BackupWeapon.Name)

	// Технологии then Медицина trigger, in mapping order
	require.Len(t, sheet.SupportItems, 2)
	assert.Equal(t, "Набор инструментов", sheet.SupportItems[0].Name)
	assert.Equal(t, "Аптечка", sheet.SupportItems[1].Name)

	require.NotNil(t, sheet.Lifestyle)
	assert.Equal(t, "Капсула в отеле", sheet.Lifestyle.Name)
	require.NotNil(t, sheet.Transport)
	assert.Equal(t, "Мотоцикл", sheet.Transport.Name)
}

func TestGenerate_GenderMatchesNamePool(t *testing.T) {
	c := testCatalog(t, fullCatalogDoc)

	for seed := int64(0); seed < 30; seed++ {
		sheet, err := seededService(c, seed).Generate()
		require.NoError(t, err)

		switch sheet.Gender {
		case generator.GenderMale:
			assert.Equal(t, "Кэнши", sheet.Name)
			assert.Equal(t, "Мастер меча", sheet.NameMeaning)
		case generator.GenderFemale:
			assert.Equal(t, "Акико", sheet.Name)
			assert.Equal(t, "Дитя осени", sheet.NameMeaning)
		}
	}
}

func TestGenerate_FallbackToOtherNamePool(t *testing.T) {
	doc := strings.Replace(fullCatalogDoc,
		"| 1 | Кэнши | Мастер меча | Мужские имена | |\n", "", 1)
	c := testCatalog(t, doc)

	// With no male names every generation must land on the female pool
	for seed := int64(0); seed < 30; seed++ {
		sheet, err := seededService(c, seed).Generate()
		require.NoError(t, err)
		assert.Equal(t, generator.GenderFemale, sheet.Gender)
		assert.Equal(t, "Акико", sheet.Name)
	}
}

func TestGenerate_FeudRequired(t *testing.T) {
	doc := strings.Replace(fullCatalogDoc,
		"| 4 | Корпоративный беглец | Сбежал из корпорации с её секретами | Предыстория | |",
		"| 4 | Нужна вражда | | Предыстория | |", 1)
	c := testCatalog(t, doc)

	sheet, err := seededService(c, 3).Generate()
	require.NoError(t, err)

	assert.Equal(t, "Нужна вражда", sheet.Background.Name)
	require.NotNil(t, sheet.Feud)
	assert.Equal(t, "Клан Арасака охотится за вами", sheet.Feud.Description)
}

func TestGenerate_FeudNegated(t *testing.T) {
	doc := strings.Replace(fullCatalogDoc,
		"| 4 | Корпоративный беглец | Сбежал из корпорации с её секретами | Предыстория | |",
		"| 4 | Вражда не нужна | | Предыстория | |", 1)
	c := testCatalog(t, doc)

	sheet, err := seededService(c, 3).Generate()
	require.NoError(t, err)
	assert.Nil(t, sheet.Feud)
}

func TestGenerate_MissingMandatoryCategory(t *testing.T) {
	doc := strings.Replace(fullCatalogDoc,
		"| 6 | Месть | Отомстить бывшему нанимателю | Мотивация | |\n", "", 1)
	c := testCatalog(t, doc)

	_, err := seededService(c, 1).Generate()
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "no candidates")
	assert.Contains(t, err.Error(), "Мотивация")
}

// minimalCatalogDoc carries only the mandatory categories; everything
// optional is absent.
const minimalCatalogDoc = featsHeader + `| 1 | Кэнши | Мастер меча | Мужские имена | |
| 2 | Акико | Дитя осени | Женские имена | |
| 3 | Инфильтратор | | Концепт | |
| 4 | Корпоративный беглец | | Предыстория | |
| 5 | Месть | | Мотивация | |
| 6 | Уличный стиль | | Одежда | |
`

func TestGenerate_DegradesOnMissingOptionalCategories(t *testing.T) {
	c := testCatalog(t, minimalCatalogDoc)

	sheet, err := seededService(c, 11).Generate()
	require.NoError(t, err)

	assert.Empty(t, sheet.Features)
	assert.Empty(t, sheet.Problems)
	assert.Empty(t, sheet.Augmentations)
	assert.GreaterOrEqual(t, sheet.AugmentationRoll, 1)
	assert.LessOrEqual(t, sheet.AugmentationRoll, 6)
	assert.Empty(t, sheet.Skills)
	assert.Zero(t, sheet.Rank)
	assert.Nil(t, sheet.Armor)
	assert.Nil(t, sheet.PrimaryWeapon)
	assert.Nil(t, sheet.BackupWeapon)
	assert.Empty(t, sheet.SupportItems)
	assert.Nil(t, sheet.Lifestyle)
	assert.Nil(t, sheet.Transport)
}

func TestGenerate_NoCatalog(t *testing.T) {
	svc := generator.NewService(&generator.ServiceConfig{})

	_, err := svc.Generate()
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestAugmentationPlan(t *testing.T) {
	tests := []struct {
		roll int
		want []generator.ClassCount
	}{
		{roll: 1, want: []generator.ClassCount{{Class: "А", Count: 1}}},
		{roll: 2, want: []generator.ClassCount{{Class: "B", Count: 1}, {Class: "D", Count: 1}}},
		{roll: 3, want: []generator.ClassCount{{Class: "C", Count: 2}}},
		{roll: 4, want: []generator.ClassCount{{Class: "C", Count: 1}, {Class: "D", Count: 2}}},
		{roll: 5, want: []generator.ClassCount{{Class: "D", Count: 4}}},
		{roll: 6, want: []generator.ClassCount{{Class: "D", Count: 4}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generator.AugmentationPlan(tt.roll), "roll %d", tt.roll)
	}
}

func TestGenerate_AugmentationCountsFollowPlan(t *testing.T) {
	c := testCatalog(t, fullCatalogDoc)

	tests := []struct {
		roll int
		want map[string]int // augmentation class suffix -> count
	}{
		{roll: 1, want: map[string]int{"А": 1}},
		{roll: 2, want: map[string]int{"B": 1, "D": 1}},
		{roll: 3, want: map[string]int{"C": 2}},
		{roll: 4, want: map[string]int{"C": 1, "D": 2}},
		{roll: 5, want: map[string]int{"D": 4}},
		{roll: 6, want: map[string]int{"D": 4}},
	}

	for _, tt := range tests {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{tt.roll})

		svc := generator.NewService(&generator.ServiceConfig{
			Catalog: c,
			Rand:    rand.New(rand.NewSource(1)),
			Roller:  roller,
		})

		sheet, err := svc.Generate()
		require.NoError(t, err)
		assert.Equal(t, tt.roll, sheet.AugmentationRoll)

		got := make(map[string]int)
		for _, feat := range sheet.Augmentations {
			class := strings.TrimPrefix(feat.Type, "Аугментации класса ")
			got[class]++
		}
		assert.Equal(t, tt.want, got, "roll %d", tt.roll)
	}
}

func TestGenerate_WeaponFallbacks(t *testing.T) {
	// Remove the heavy weapon so the primary falls back to the light pool,
	// and the karate skill so the backup falls back to the blade pool.
	doc := strings.Replace(fullCatalogDoc,
		"| 102 | Миниган | | Тяжелое оружие | 15000 |\n", "", 1)
	doc = strings.Replace(doc,
		"| 201 | Карате | Удары руками и ногами | |",
		"| 201 | Атлетика | Бег и лазание | |", 1)
	c := testCatalog(t, doc)

	sheet, err := seededService(c, 5).Generate()
	require.NoError(t, err)

	require.NotNil(t, sheet.PrimaryWeapon)
	assert.Equal(t, "Пистолет", sheet.PrimaryWeapon.Name)
	require.NotNil(t, sheet.BackupWeapon)
	assert.Equal(t, "Катана", sheet.BackupWeapon.Name)
}

func TestGenerate_SupportDefaults(t *testing.T) {
	// Strip every trigger skill; the defaults (tech, computer) take over.
	doc := strings.Replace(fullCatalogDoc,
		"| 202 | Медицина | Первая помощь | |",
		"| 202 | Атлетика | Бег и лазание | |", 1)
	doc = strings.Replace(doc,
		"| 203 | Технологии | Ремонт и наладка | |",
		"| 203 | Выживание | Жизнь вне купола | |", 1)
	c := testCatalog(t, doc)

	sheet, err := seededService(c, 13).Generate()
	require.NoError(t, err)

	require.Len(t, sheet.SupportItems, 2)
	assert.Equal(t, "Набор инструментов", sheet.SupportItems[0].Name)
	assert.Equal(t, "Ноутбук", sheet.SupportItems[1].Name)
}
