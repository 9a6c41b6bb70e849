package constants

const (
	SettingTimezone   = "timezone"
	SettingActiveUser = "active_user"

	// Default Settings Values
	DefaultTimezone = "Local" // Use system local timezone by default
)
