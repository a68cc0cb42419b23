package models

// Commands are the external invocations printed after the time fields.
type Commands struct {
	Update   string `json:"update"`
	SendInfo string `json:"sendinfo"`
	Download string `json:"download"`
}

// DefaultCommands returns the stock mtv-cli invocations.
func DefaultCommands() Commands {
	return Commands{
		Update:   "mtv-cli aktualisiere-filmliste",
		SendInfo: "/usr/local/bin/mtv_sendinfo",
		Download: "mtv-cli vormerkungen-herunterladen",
	}
}
