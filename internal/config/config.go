package config

// Config is the single station configuration document. It is persisted as one
// JSON file and mirrored in memory for the lifetime of the process.
type Config struct {
	Port               int    `json:"port"`
	StationLabel       string `json:"station_label"`
	Description        string `json:"description"`
	AudioURL           string `json:"audio_url"`
	Username           string `json:"username"`
	PasswordHash       string `json:"password_hash"`
	SecretKey          string `json:"secret_key"`
	Theme              Theme  `json:"theme"`
	BackgroundEnabled  bool   `json:"background_enabled"`
	BackgroundFilename string `json:"background_filename"`
}

// Theme holds the seven named color/style tokens used by the views.
// Each value is a CSS color or gradient string.
type Theme struct {
	BodyBg  string `json:"body_bg"`
	CardBg  string `json:"card_bg"`
	CoverBg string `json:"cover_bg"`
	Accent1 string `json:"accent1"`
	Accent2 string `json:"accent2"`
	Text    string `json:"text"`
	Muted   string `json:"muted"`
}

const (
	// DefaultPort is used on first run and whenever a loaded document has no port.
	DefaultPort = 4080

	// DefaultStationLabel is the display name before the operator sets one.
	DefaultStationLabel = "RadioStream"

	// DefaultDescription is the placeholder station description.
	DefaultDescription = "A short description of the station."

	// DefaultUsername and DefaultPassword are the first-run admin credentials.
	// Only the bcrypt hash of the password is ever persisted.
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

// DefaultTheme returns the built-in color scheme. Restore-colors in the admin
// console replaces the stored theme with this wholesale.
func DefaultTheme() Theme {
	return Theme{
		BodyBg:  "#0f172a",
		CardBg:  "linear-gradient(180deg,#071028 0%, #071b2a 100%)",
		CoverBg: "#0b1220",
		Accent1: "#00c2a8",
		Accent2: "#007a66",
		Text:    "#e6eef8",
		Muted:   "#9fb3cf",
	}
}

// Clone returns a copy of the document. Admin updates mutate a clone and only
// swap it in after a successful save, so a failed save never leaves a
// half-applied in-memory state.
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}
