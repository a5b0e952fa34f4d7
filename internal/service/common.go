package service

import (
	"errors"
	"fmt"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the authenticated caller, passed explicitly into every
// operation that needs ownership or role checks. No ambient request state.
type Principal struct {
	ID    uuid.UUID
	Email string
	Rol   string
}

// Wire formats for date and time-of-day fields.
const (
	formatoFecha = "2006-01-02"
	formatoHora  = "15:04"
)

// noEncontrado reports whether err is GORM's missing-row error.
func noEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// duplicado translates a database unique-constraint violation into the same
// 422 field error the pre-flight check produces. Concurrent writers can both
// pass the check-then-create step; the constraint is the authoritative guard.
func duplicado(err error, campo, mensaje string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ValidationField(campo, mensaje)
	}
	return err
}

func parseUUID(campo, valor string) (uuid.UUID, error) {
	id, err := uuid.Parse(valor)
	if err != nil {
		return uuid.Nil, apierror.ValidationField(campo, fmt.Sprintf("%q no es un identificador valido", valor))
	}
	return id, nil
}
