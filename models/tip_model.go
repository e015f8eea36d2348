package models

type Tip struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text string `gorm:"column:tip;type:text;not null" json:"tip" validate:"required"`
}
