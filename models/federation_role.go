// file: models/federation_role.go
package models

import "gorm.io/gorm"

// FederationRole 联合会内部职务（如 secretar general, antrenor federal）
type FederationRole struct {
	ID        uint32         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"size:100;unique;not null" json:"name"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FederationRole) TableName() string {
	return "frvv_federation_role"
}
