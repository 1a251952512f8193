package catalog

// Category is the type tag linking feats and inventory items to the
// assembly rule that selects them. The constants below cover every category
// the generator dispatches on; queries keep accepting arbitrary strings and
// return an empty pool for anything unknown.
type Category string

// Feat categories
const (
	CategoryConcept     Category = "Концепт"
	CategoryBackground  Category = "Предыстория"
	CategoryMotivation  Category = "Мотивация"
	CategoryClothing    Category = "Одежда"
	CategoryFeatures    Category = "Особые черты"
	CategoryProblems    Category = "Личностные проблемы"
	CategoryMaleNames   Category = "Мужские имена"
	CategoryFemaleNames Category = "Женские имена"
)

// Inventory categories
const (
	CategoryArmor        Category = "Броня"
	CategoryHeavyWeapon  Category = "Тяжелое оружие"
	CategoryLightWeapon  Category = "Лёгкое оружие"
	CategoryMeleeWeapon  Category = "Холодное оружие"
	CategoryLifestyle    Category = "Образ жизни"
	CategoryTransport    Category = "Транспорт"
	CategoryCyberdeck    Category = "Кибердека"
	CategoryProgram      Category = "Программа"
	CategorySecurityGear Category = "Охранное оборудование"
	CategoryTech         Category = "Техника"
	CategoryMedical      Category = "Медицинские товары и услуги"
	CategoryExplosives   Category = "Взрывчатка"
	CategoryComputer     Category = "Компьютер"
)

const augmentationPrefix = "Аугментации класса "

// AugmentationCategory returns the feat category for an augmentation class
// letter. Class "А" is the Cyrillic letter in the catalog; B, C and D are
// Latin.
func AugmentationCategory(class string) Category {
	return Category(augmentationPrefix + class)
}
