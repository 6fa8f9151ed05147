package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrPasswordTooShort   = errors.New("la contraseña es demasiado corta")
	// ErrPersistence: el backend reportó un fallo de lectura/escritura. Se devuelve
	// al llamador como operación fallida; nunca se reintenta ni tumba el proceso.
	ErrPersistence = errors.New("fallo de persistencia del backend")
	// ErrNothingPersisted: el backend reportó cero filas insertadas/actualizadas.
	ErrNothingPersisted = errors.New("el backend no persistió ninguna fila")
	// ErrElevatedKeyRequired: la operación exige la credencial service-role y solo
	// está configurada la credencial restringida (anon).
	ErrElevatedKeyRequired = errors.New("la operación requiere la credencial elevada del backend")
)

// FieldViolation describe una restricción de esquema violada por un campo concreto.
// Field usa el nombre JSON del campo tal como lo envió el llamador.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError agrupa TODAS las violaciones de una postulación: la validación es
// todo-o-nada y el llamador recibe la lista completa para corregir en una sola pasada.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "registro inválido"
	}
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("registro inválido: %s", strings.Join(fields, ", "))
}

// HasField indica si alguna violación nombra el campo dado.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
