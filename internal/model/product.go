package model

// Category is the closed set of product categories
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryGrocery     Category = "GROCERY"
	CategoryClothing    Category = "CLOTHING"
	CategoryStationery  Category = "STATIONERY"
	CategoryBeauty      Category = "BEAUTY"
	CategoryFurniture   Category = "FURNITURE"
	CategoryToys        Category = "TOYS"
	CategoryMedicine    Category = "MEDICINE"
	CategoryOther       Category = "OTHER"
)

// Categories lists every valid category value
var Categories = []Category{
	CategoryElectronics,
	CategoryGrocery,
	CategoryClothing,
	CategoryStationery,
	CategoryBeauty,
	CategoryFurniture,
	CategoryToys,
	CategoryMedicine,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Unit is the closed set of units a product is sold in
type Unit string

const (
	UnitPiece      Unit = "PIECE"
	UnitGram       Unit = "GRAM"
	UnitKilogram   Unit = "KILOGRAM"
	UnitLitre      Unit = "LITRE"
	UnitMillilitre Unit = "MILLILITRE"
	UnitMeter      Unit = "METER"
	UnitCentimeter Unit = "CENTIMETER"
	UnitBox        Unit = "BOX"
	UnitPack       Unit = "PACK"
)

type Product struct {
	BaseModel
	Name        string   `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string   `gorm:"type:text;not null" json:"description" validate:"required"`
	Category    Category `gorm:"type:varchar(20);not null;index" json:"category" validate:"required,oneof=ELECTRONICS GROCERY CLOTHING STATIONERY BEAUTY FURNITURE TOYS MEDICINE OTHER"`
	Unit        Unit     `gorm:"type:varchar(20);not null" json:"unit" validate:"required,oneof=PIECE GRAM KILOGRAM LITRE MILLILITRE METER CENTIMETER BOX PACK"`
	Price       float64  `gorm:"not null;default:0" json:"price" validate:"gte=0"`
}
