package inventory

// Value Objects - closed enumerations shared by manual entry, barcode
// lookup, and receipt scanning.

// Category classifies an ingredient. The set is closed; AI-extracted and
// barcode-mapped items are coerced onto it.
type Category string

const (
	CategoryMeat      Category = "육류"
	CategorySeafood   Category = "해산물"
	CategoryVegetable Category = "채소"
	CategoryFruit     Category = "과일"
	CategoryDairy     Category = "유제품"
	CategoryFrozen    Category = "냉동식품"
	CategoryBeverage  Category = "음료"
	CategorySeasoning Category = "양념"
	CategoryGrain     Category = "곡류"
	CategoryOther     Category = "기타"
)

// Categories lists all valid categories in display order
func Categories() []Category {
	return []Category{
		CategoryMeat, CategorySeafood, CategoryVegetable, CategoryFruit,
		CategoryDairy, CategoryFrozen, CategoryBeverage, CategorySeasoning,
		CategoryGrain, CategoryOther,
	}
}

// IsValid reports whether the category is one of the closed set
func (c Category) IsValid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// CategoryOrOther returns the category itself when valid, CategoryOther otherwise
func CategoryOrOther(raw string) Category {
	c := Category(raw)
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// Unit is the measurement unit for ingredient quantities
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "L"
	UnitPiece      Unit = "개"
	UnitPack       Unit = "팩"
	UnitBottle     Unit = "병"
	UnitBag        Unit = "봉"
)

// Units lists all valid units in display order
func Units() []Unit {
	return []Unit{
		UnitGram, UnitKilogram, UnitMilliliter, UnitLiter,
		UnitPiece, UnitPack, UnitBottle, UnitBag,
	}
}

// IsValid reports whether the unit is one of the closed set
func (u Unit) IsValid() bool {
	for _, v := range Units() {
		if u == v {
			return true
		}
	}
	return false
}

// UnitOrPiece returns the unit itself when valid, UnitPiece otherwise
func UnitOrPiece(raw string) Unit {
	u := Unit(raw)
	if u.IsValid() {
		return u
	}
	return UnitPiece
}
