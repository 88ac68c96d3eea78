package enum

// PricingType determines how a product is priced and taxed.
// basePrice products are taxable; mrp products carry tax inside the printed price.
type PricingType string

const (
	PricingTypeBasePrice PricingType = "basePrice"
	PricingTypeMRP       PricingType = "mrp"
)

// Valid reports whether the pricing type is one of the known values.
func (p PricingType) Valid() bool {
	return p == PricingTypeBasePrice || p == PricingTypeMRP
}

// Taxable reports whether items of this pricing type enter the taxable bucket.
func (p PricingType) Taxable() bool {
	return p == PricingTypeBasePrice
}

// ProductCategory classifies a menu item as Veg or Non-Veg.
type ProductCategory string

const (
	CategoryVeg    ProductCategory = "Veg"
	CategoryNonVeg ProductCategory = "Non-Veg"
)

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	return c == CategoryVeg || c == CategoryNonVeg
}

// ProductType is the menu section a product belongs to.
type ProductType string

const (
	TypeBeverage   ProductType = "Beverage"
	TypeStarter    ProductType = "Starter"
	TypeDessert    ProductType = "Dessert"
	TypeBreads     ProductType = "Breads"
	TypeMainCourse ProductType = "Main-Course"
	TypeCombo      ProductType = "Combo"
	TypeSweets     ProductType = "Sweets"
	TypeSnacks     ProductType = "Snacks"
	TypeCustom     ProductType = "Custom"
)

// Valid reports whether the product type is one of the known values.
func (t ProductType) Valid() bool {
	switch t {
	case TypeBeverage, TypeStarter, TypeDessert, TypeBreads,
		TypeMainCourse, TypeCombo, TypeSweets, TypeSnacks, TypeCustom:
		return true
	}
	return false
}

// UnitType is how a product's variants are sized.
type UnitType string

const (
	UnitSize     UnitType = "Size"
	UnitQuantity UnitType = "Quantity"
	UnitWeight   UnitType = "Weight"
	UnitCustom   UnitType = "Custom"
)

// Valid reports whether the unit type is one of the known values.
func (u UnitType) Valid() bool {
	switch u {
	case UnitSize, UnitQuantity, UnitWeight, UnitCustom:
		return true
	}
	return false
}
