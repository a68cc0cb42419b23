package models

import "time"

// Entry is a single crontab rule.
type Entry struct {
	Spec     string `json:"spec"`     // five-field time spec, e.g. "17 3 * * *"
	Command  string `json:"command"`
	Disabled bool   `json:"disabled"` // rendered with a leading '#'
}

// Run is one upcoming execution of an enabled entry.
type Run struct {
	Command string    `json:"command"`
	At      time.Time `json:"at"`
}
