package pedersen

import "errors"

// ErrInvalidParameter is returned when the Pedersen parameter h fails the
// checks in params.ValidPedersenParameter.
var ErrInvalidParameter = errors.New("invalid pedersen parameter")
