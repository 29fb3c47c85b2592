// Package records holds the small domain records used to exercise the
// combinators in tests and in the example program.
package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// identifierWidth is the number of hex digits in a uuid without dashes.
const identifierWidth = 32

type SourceObject struct {
	ID          int
	Name        string
	Description string
	Value       float64
}

type TargetObject struct {
	ID          uuid.UUID
	Name        string
	Description string
	Value       float64
}

// Person may have a spouse. LastName is optional.
type Person struct {
	FirstName string
	LastName  string
	Age       int
	Spouse    *Person
}

func (p Person) String() string {
	return fmt.Sprintf("%s is %d years old", p.FirstName, p.Age)
}

// Identifier left-pads the decimal id with zeros to a full uuid and parses it.
// Negative ids keep their sign inside the padding and fail to parse.
func Identifier(id int) (uuid.UUID, error) {
	raw := strconv.Itoa(id)
	if len(raw) < identifierWidth {
		raw = strings.Repeat("0", identifierWidth-len(raw)) + raw
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identifier for %d: %w", id, err)
	}
	return parsed, nil
}

// ToTarget copies source into a TargetObject with a uuid identifier.
func ToTarget(source SourceObject) (TargetObject, error) {
	id, err := Identifier(source.ID)
	if err != nil {
		return TargetObject{}, err
	}
	return TargetObject{
		ID:          id,
		Name:        source.Name,
		Description: source.Description,
		Value:       source.Value,
	}, nil
}

// MustTarget is ToTarget for factories that signal failure by panicking.
func MustTarget(source SourceObject) TargetObject {
	target, err := ToTarget(source)
	if err != nil {
		panic(err)
	}
	return target
}
