// file: utils/code_generator.go
package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateRegistrationNumber 生成运动员的联合会注册号，格式 FRVV-XXXXXXXXXXXX
func GenerateRegistrationNumber() string {
	part := strings.ToUpper(strings.Replace(uuid.New().String(), "-", "", -1)[:12])
	return fmt.Sprintf("FRVV-%s", part)
}
