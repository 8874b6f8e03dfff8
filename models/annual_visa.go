// file: models/annual_visa.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// 自定义年度签证状态类型
type VisaStatus string

const (
	VisaStatusAvailable    VisaStatus = "available"
	VisaStatusExpired      VisaStatus = "expired"
	VisaStatusNotAvailable VisaStatus = "not_available"
)

// AnnualVisaValidityDays 年度签证有效期（365 天）
const AnnualVisaValidityDays = 365

// AnnualVisa 年度注册签证。VisaStatus 为派生字段，
// 每次保存前由 BeforeSave 重新计算，不接受外部写入。
type AnnualVisa struct {
	ID         uint32     `gorm:"primarykey" json:"id"`
	AthleteID  uint32     `gorm:"not null;index" json:"athlete_id"`
	Athlete    Athlete    `gorm:"foreignKey:AthleteID" json:"-"`
	IssuedDate *time.Time `gorm:"type:date" json:"issued_date,omitempty"`
	VisaStatus VisaStatus `gorm:"type:enum('available','expired','not_available');default:'not_available'" json:"visa_status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (AnnualVisa) TableName() string {
	return "frvv_annual_visa"
}

// ComputeStatusAt 按给定日期计算签证状态：
// 未签发 -> not_available；365 天内 -> available；否则 expired
func ComputeStatusAt(issued *time.Time, today time.Time) VisaStatus {
	if issued == nil {
		return VisaStatusNotAvailable
	}
	expiration := issued.AddDate(0, 0, AnnualVisaValidityDays)
	if today.After(expiration) {
		return VisaStatusExpired
	}
	return VisaStatusAvailable
}

// BeforeSave GORM Hook，持久化前重算签证状态
func (v *AnnualVisa) BeforeSave(tx *gorm.DB) (err error) {
	v.VisaStatus = ComputeStatusAt(v.IssuedDate, time.Now())
	return
}
