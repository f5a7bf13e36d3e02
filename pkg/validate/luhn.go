package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const referenceLength = 12

func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// NewReference returns a numeric payment reference with a Luhn check digit,
// short enough to be typed into a bank transfer comment.
func NewReference() string {
	return goluhn.Generate(referenceLength)
}
