// file: models/medical_visa.go
package models

import (
	"time"
)

// 自定义体检结论类型
type HealthStatus string

const (
	HealthStatusApproved HealthStatus = "approved"
	HealthStatusDenied   HealthStatus = "denied"
)

// MedicalVisaValidityDays 医疗签证有效期（180 天）
const MedicalVisaValidityDays = 180

// MedicalVisa 年度体检签证。有效性不落库，读取时现算，永不过期失真。
type MedicalVisa struct {
	ID           uint32       `gorm:"primarykey" json:"id"`
	AthleteID    uint32       `gorm:"not null;index" json:"athlete_id"`
	Athlete      Athlete      `gorm:"foreignKey:AthleteID" json:"-"`
	IssuedDate   *time.Time   `gorm:"type:date" json:"issued_date,omitempty"`
	HealthStatus HealthStatus `gorm:"type:enum('approved','denied');default:'denied'" json:"health_status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (MedicalVisa) TableName() string {
	return "frvv_medical_visa"
}

// IsValidAt 判断签证在给定日期是否有效：签发日起 180 天内
func (v MedicalVisa) IsValidAt(today time.Time) bool {
	if v.IssuedDate == nil {
		return false
	}
	expiration := v.IssuedDate.AddDate(0, 0, MedicalVisaValidityDays)
	return !today.After(expiration)
}

// IsValid 按当前日期判断有效性
func (v MedicalVisa) IsValid() bool {
	return v.IsValidAt(time.Now())
}
