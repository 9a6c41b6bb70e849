package models

// Settings represents application-wide settings
type Settings struct {
	Timezone   string `json:"timezone"`    // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	ActiveUser string `json:"active_user"` // username used when --user is not given
}
