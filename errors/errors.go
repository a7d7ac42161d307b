package errors

import "fmt"

// Inconceivable marks code paths that a well-formed grammar can never reach.
var Inconceivable = fmt.Errorf("inconceivable")
