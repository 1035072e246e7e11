package decorengine

import (
	"errors"
)

var ErrNilInnerProvider = errors.New("nil inner provider supplied")
var ErrDuplicateModification = errors.New("duplicate modification for attribute")
var ErrValueKindMismatch = errors.New("transform kind does not match attribute value kind")
var ErrEmptyChainNameSupplied = errors.New("empty chain name supplied")
