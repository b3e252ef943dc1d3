package generator

import (
	"fmt"
	"strings"

	"github.com/JonasFriedli/DestructiveJSON/internal/config"
	apperrors "github.com/JonasFriedli/DestructiveJSON/internal/errors"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

// DunderMode selects how much of the reserved-name catalog a
// key-injection payload carries.
type DunderMode string

const (
	// DunderSimple injects only the class-identity key.
	DunderSimple DunderMode = "simple"
	// DunderFull injects the attribute-dict key with a nested map.
	DunderFull DunderMode = "full"
	// DunderAll injects every catalog key, including the initializer.
	DunderAll DunderMode = "all"
)

// Dunder returns a structured value whose keys collide with the
// reserved attribute names of the object model named by the catalog,
// mixed with an ordinary key. Targets unsafe merge-into-attributes
// deserialization downstream.
func Dunder(mode DunderMode, catalog config.DunderCatalog) (models.Payload, error) {
	switch mode {
	case DunderSimple:
		obj := models.NewObjectCap(2).
			Set(catalog.Class, "pwn").
			Set("normal", "ok")
		return models.Document(obj), nil
	case DunderFull:
		obj := models.NewObjectCap(2).
			Set(catalog.Dict, models.NewObjectCap(2).Set("injected", "pwn").Set("x", int64(1))).
			Set("normal", "ok")
		return models.Document(obj), nil
	case DunderAll:
		obj := models.NewObjectCap(4).
			Set(catalog.Class, "p").
			Set(catalog.Dict, models.NewObjectCap(1).Set("a", int64(1))).
			Set(catalog.Init, "s").
			Set("normal", "ok")
		return models.Document(obj), nil
	default:
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("unknown dunder mode '%s'", mode), apperrors.ErrUnknownMode)
	}
}

// Mixed stacks three stress dimensions in one document: the wide object
// from ManyKeys, one injected attribute-dict key with a short fixed
// payload, and the LongKey member of length longLength. Pure
// composition; no generation logic of its own.
func Mixed(count, longLength int, catalog config.DunderCatalog) (models.Payload, error) {
	if longLength < 0 {
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("long key length must be >= 0, got %d", longLength), apperrors.ErrNegativeParam)
	}
	obj, err := manyKeysObject(count, longKeyChar)
	if err != nil {
		return models.Payload{}, err
	}

	obj.Set(catalog.Dict, models.NewObjectCap(2).Set("injected", "pwn").Set("num", int64(123)))
	obj.Set(strings.Repeat(longKeyChar, longLength), longKeyValue)
	return models.Document(obj), nil
}
