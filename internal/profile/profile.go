// Package profile provides the profile source collaborators consumed by the
// cache: implementations that fetch a user profile from the host API.
//
// The profile payload itself is owned by the host. It is carried as opaque
// JSON and never interpreted here.
package profile

import "encoding/json"

// Profile is the host-defined user profile payload, passed through opaquely.
type Profile = json.RawMessage
