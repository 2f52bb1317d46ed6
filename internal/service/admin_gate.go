package service

import (
	"errors"
	"strings"

	"github.com/treasuretrails/park-api/internal/domain"
)

var (
	ErrUnauthorized = errors.New("caller is not the venue owner")
)

// AdminGate guards catalog mutations behind the single owner identity fixed
// at construction. Holder-facing operations never consult it.
type AdminGate struct {
	ownerEmail string
}

func NewAdminGate(ownerEmail string) *AdminGate {
	return &AdminGate{
		ownerEmail: ownerEmail,
	}
}

func (g *AdminGate) Authorize(caller domain.User) error {
	if !strings.EqualFold(caller.Email, g.ownerEmail) {
		return ErrUnauthorized
	}

	return nil
}
