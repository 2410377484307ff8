package entity

import (
	"fmt"
)

type VehicleType string

const (
	VehicleTypeCar    VehicleType = "car"
	VehicleTypeSUV    VehicleType = "suv"
	VehicleTypeVan    VehicleType = "van"
	VehicleTypeBus    VehicleType = "bus"
	VehicleTypeLuxury VehicleType = "luxury"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeSUV, VehicleTypeVan, VehicleTypeBus, VehicleTypeLuxury:
		return true
	}
	return false
}

func (t VehicleType) Display() string {
	switch t {
	case VehicleTypeCar:
		return "Car"
	case VehicleTypeSUV:
		return "SUV"
	case VehicleTypeVan:
		return "Van"
	case VehicleTypeBus:
		return "Bus"
	case VehicleTypeLuxury:
		return "Luxury Vehicle"
	}
	return string(t)
}

type PackageType string

const (
	PackageTypeOneDay   PackageType = "1day"
	PackageTypeThreeDay PackageType = "3days"
	PackageTypeFiveDay  PackageType = "5days"
	PackageTypeCustom   PackageType = "custom"
)

func (p PackageType) Valid() bool {
	switch p {
	case PackageTypeOneDay, PackageTypeThreeDay, PackageTypeFiveDay, PackageTypeCustom:
		return true
	}
	return false
}

func (p PackageType) Display() string {
	switch p {
	case PackageTypeOneDay:
		return "1 Day Trip"
	case PackageTypeThreeDay:
		return "3 Days Trip"
	case PackageTypeFiveDay:
		return "5 Days Trip"
	case PackageTypeCustom:
		return "Custom Trip"
	}
	return string(p)
}

// Vehicle is the rentable inventory item. IsAvailable is the owner's
// on/off switch and is independent of date-based booking conflicts.
type Vehicle struct {
	Base
	Name           string      `db:"name"`
	VehicleType    VehicleType `db:"vehicle_type"`
	PackageType    PackageType `db:"package_type"`
	ImageURL       *string     `db:"image_url"`
	PricePerDay    float64     `db:"price_per_day"`
	Description    string      `db:"description"`
	Capacity       int         `db:"capacity"`
	IsAvailable    bool        `db:"is_available"`
	PackageDetails string      `db:"package_details"`
}

func (v *Vehicle) CapacityDisplay() string {
	return fmt.Sprintf("%dp", v.Capacity)
}
