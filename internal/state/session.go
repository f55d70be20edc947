package state

import "github.com/google/uuid"

// siteID identifies this editing session in log lines and default export
// file names.
var siteID = uuid.NewString()

// SessionID returns this session's unique ID.
func SessionID() string {
	return siteID
}
