// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import "errors"

// ErrOriginNotAllowed is reported when a request carries an Origin header
// outside the configured allow-list.
var ErrOriginNotAllowed = errors.New("origin not allowed by CORS policy")
