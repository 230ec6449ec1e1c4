package models

// NotificationSettings - настройки уведомлений пользователя
type NotificationSettings struct {
	Push              bool `json:"push"`
	Email             bool `json:"email"`
	TransactionAlerts bool `json:"transactionAlerts"`
	SecurityAlerts    bool `json:"securityAlerts"`
}

// PrivacySettings - настройки приватности пользователя
type PrivacySettings struct {
	ShowProfile           bool `json:"showProfile"`
	ShowActivity          bool `json:"showActivity"`
	AllowSearchByUsername bool `json:"allowSearchByUsername"`
}

// PreferenceSettings - пользовательские предпочтения
type PreferenceSettings struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

// UserSettings - полный набор настроек пользователя
type UserSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Preferences   PreferenceSettings   `json:"preferences"`
}

// NotificationSettingsUpdate - частичное обновление настроек уведомлений
type NotificationSettingsUpdate struct {
	Push              *bool `json:"push,omitempty"`
	Email             *bool `json:"email,omitempty"`
	TransactionAlerts *bool `json:"transactionAlerts,omitempty"`
	SecurityAlerts    *bool `json:"securityAlerts,omitempty"`
}

// PrivacySettingsUpdate - частичное обновление настроек приватности
type PrivacySettingsUpdate struct {
	ShowProfile           *bool `json:"showProfile,omitempty"`
	ShowActivity          *bool `json:"showActivity,omitempty"`
	AllowSearchByUsername *bool `json:"allowSearchByUsername,omitempty"`
}

// PreferenceSettingsUpdate - частичное обновление предпочтений
type PreferenceSettingsUpdate struct {
	Language *string `json:"language,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// SettingsUpdate - частичное обновление настроек. Слияние выполняется
// по подгруппам: незаполненные поля не изменяют текущие значения.
type SettingsUpdate struct {
	Notifications *NotificationSettingsUpdate `json:"notifications,omitempty"`
	Privacy       *PrivacySettingsUpdate      `json:"privacy,omitempty"`
	Preferences   *PreferenceSettingsUpdate   `json:"preferences,omitempty"`
}
