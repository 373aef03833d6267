package entity

// KeyValue is one entry of the local storage table.
type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}
