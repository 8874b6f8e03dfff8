// file: services/errors.go
package services

import "errors"

// 领域错误哨兵。控制器据此映射到响应码：
// 2xxx 唯一性冲突，3xxx 报名/奖项约束，4004 不存在，5001 派生字段重算失败
var (
	ErrNotFound                 = errors.New("record not found")
	ErrDuplicateAward           = errors.New("the same entity cannot be awarded multiple times within the same category")
	ErrNotEnrolled              = errors.New("awarded entity must be enrolled in the category")
	ErrDuplicateEnrollment      = errors.New("entity is already enrolled in this category")
	ErrKindMismatch             = errors.New("participant kind does not match the category type")
	ErrDuplicateTeamComposition = errors.New("a team with the exact same members already exists")
	ErrRecompute                = errors.New("failed to recompute derived state")
)
