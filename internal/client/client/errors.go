package client

import "github.com/dmitrijs2005/wheel/internal/common"

// ErrUnavailable is returned when the server cannot be reached or did not
// answer in time.
var ErrUnavailable = common.ErrorUnavailable
