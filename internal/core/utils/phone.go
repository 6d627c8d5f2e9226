package utils

import (
	"strings"

	"github.com/sokonihq/sokoni/internal/core/domain"
)

// NormalizePhone converts a Kenyan MSISDN to the 2547XXXXXXXX form the
// payment provider expects. Accepts 07..., +2547... and 2547... inputs.
func NormalizePhone(phone string) (string, error) {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	if len(p) != 12 || !strings.HasPrefix(p, "254") {
		return "", domain.ErrInvalidPhoneNumber
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", domain.ErrInvalidPhoneNumber
		}
	}
	return p, nil
}
