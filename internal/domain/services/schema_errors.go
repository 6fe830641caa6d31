package services

import (
	"errors"
	"fmt"

	"github.com/endri-fradomos/local-api/internal/infrastructure/database"
)

// SchemaMissingError reports an operation against a relation the startup
// probe found absent. Reads degrade instead of raising it; writes surface it
// so the caller can return the remediation payload.
type SchemaMissingError struct {
	Table string
}

func (e *SchemaMissingError) Error() string {
	return fmt.Sprintf("relation %q does not exist", e.Table)
}

// SuggestedDDL returns the schema-creation statement for the missing relation
func (e *SchemaMissingError) SuggestedDDL() string {
	return database.SuggestedDDL(e.Table)
}

// AsSchemaMissing unwraps err into a SchemaMissingError if it is one
func AsSchemaMissing(err error) (*SchemaMissingError, bool) {
	var sme *SchemaMissingError
	if errors.As(err, &sme) {
		return sme, true
	}
	return nil, false
}
