package models

// Schedule holds the randomly drawn times for one generated cron block.
type Schedule struct {
	MinuteForUpdate   int `json:"minute_for_update"`
	HourForUpdate     int `json:"hour_for_update"`     // 2..4
	MinuteForDownload int `json:"minute_for_download"` // always MinuteForUpdate
	HourForDownload   int `json:"hour_for_download"`   // always HourForUpdate+1, no wraparound
}
