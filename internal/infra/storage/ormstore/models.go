package ormstore

// HostTable maps the hosts table. Hosts are addressed by name; the id only
// preserves insertion order.
type HostTable struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"not null;uniqueIndex"`
	Rating float64 `gorm:"not null"`
}

func (HostTable) TableName() string { return "hosts" }

type PropertyTable struct {
	ID       uint        `gorm:"primaryKey"`
	Name     string      `gorm:"not null;uniqueIndex"`
	Location string      `gorm:"not null"`
	Rooms    []RoomTable `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (PropertyTable) TableName() string { return "properties" }

type RoomTable struct {
	ID         uint `gorm:"primaryKey"`
	PropertyID uint `gorm:"not null;index"`
	Beds       int  `gorm:"not null;default:1"`
	Features   *string
	Price      float64        `gorm:"not null"`
	Bookings   []BookingTable `gorm:"foreignKey:RoomID"`
}

func (RoomTable) TableName() string { return "rooms" }

// BookingTable keeps dates as YYYY-MM-DD text.
type BookingTable struct {
	ID        uint   `gorm:"primaryKey"`
	RoomID    uint   `gorm:"not null;index"`
	GuestName string `gorm:"not null"`
	Language  string `gorm:"not null"`
	CheckIn   string `gorm:"not null;type:text"`
	CheckOut  string `gorm:"not null;type:text"`
}

func (BookingTable) TableName() string { return "bookings" }
