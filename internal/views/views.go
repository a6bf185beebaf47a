// Package views assembles the data each HTML view needs and renders it.
// Assembly is pure: handlers pass in the configuration snapshot and asset
// existence flags, nothing here touches the filesystem or network.
package views

import (
	"html/template"
	"strings"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/services"
)

// ThemeCSS carries theme tokens pre-marked as CSS so gradient values
// survive the template engine's value filter inside style blocks.
type ThemeCSS struct {
	BodyBg  template.CSS
	CardBg  template.CSS
	CoverBg template.CSS
	Accent1 template.CSS
	Accent2 template.CSS
	Text    template.CSS
	Muted   template.CSS
}

func themeCSS(t config.Theme) ThemeCSS {
	return ThemeCSS{
		BodyBg:  template.CSS(t.BodyBg),
		CardBg:  template.CSS(t.CardBg),
		CoverBg: template.CSS(t.CoverBg),
		Accent1: template.CSS(t.Accent1),
		Accent2: template.CSS(t.Accent2),
		Text:    template.CSS(t.Text),
		Muted:   template.CSS(t.Muted),
	}
}

// PlayerData drives the public player page.
type PlayerData struct {
	StationLabel   string
	Description    string
	AudioURL       string
	Theme          ThemeCSS
	CoverExists    bool
	CoverURL       string
	ShowBackground bool
	BackgroundURL  string
	EmbedURL       string
}

// EmbedData drives the minimal iframe player. Autoplay is handled entirely
// client-side from the query string.
type EmbedData struct {
	StationLabel string
	Description  string
	AudioURL     string
	Theme        ThemeCSS
	CoverExists  bool
	CoverURL     string
}

// LoginData drives the login form.
type LoginData struct {
	Notice string
	Next   string
}

// AdminData drives the admin console, including the color picker values the
// form needs as plain hex.
type AdminData struct {
	CurrentUser       string
	StationLabel      string
	Description       string
	AudioURL          string
	Port              int
	CoverExists       bool
	CoverURL          string
	BackgroundExists  bool
	BackgroundURL     string
	BackgroundEnabled bool
	Theme             ThemeCSS
	BodyBgHex         string
	CardHex           string
	Notice            string
}

// BuildPlayer assembles the public player view model.
func BuildPlayer(cfg *config.Config, coverExists, backgroundExists bool, baseURL string) PlayerData {
	return PlayerData{
		StationLabel:   cfg.StationLabel,
		Description:    cfg.Description,
		AudioURL:       cfg.AudioURL,
		Theme:          themeCSS(cfg.Theme),
		CoverExists:    coverExists,
		CoverURL:       assetURL(services.CoverFilename),
		ShowBackground: cfg.BackgroundEnabled && cfg.BackgroundFilename != "" && backgroundExists,
		BackgroundURL:  assetURL(services.BackgroundFilename),
		EmbedURL:       strings.TrimSuffix(baseURL, "/") + "/embed",
	}
}

// BuildEmbed assembles the embeddable player view model.
func BuildEmbed(cfg *config.Config, coverExists bool) EmbedData {
	return EmbedData{
		StationLabel: cfg.StationLabel,
		Description:  cfg.Description,
		AudioURL:     cfg.AudioURL,
		Theme:        themeCSS(cfg.Theme),
		CoverExists:  coverExists,
		CoverURL:     assetURL(services.CoverFilename),
	}
}

// BuildLogin assembles the login view model.
func BuildLogin(notice, next string) LoginData {
	return LoginData{Notice: notice, Next: next}
}

// BuildAdmin assembles the admin console view model.
func BuildAdmin(cfg *config.Config, principal string, coverExists, backgroundExists bool, notice string) AdminData {
	return AdminData{
		CurrentUser:       principal,
		StationLabel:      cfg.StationLabel,
		Description:       cfg.Description,
		AudioURL:          cfg.AudioURL,
		Port:              cfg.Port,
		CoverExists:       coverExists,
		CoverURL:          assetURL(services.CoverFilename),
		BackgroundExists:  backgroundExists,
		BackgroundURL:     assetURL(services.BackgroundFilename),
		BackgroundEnabled: cfg.BackgroundEnabled,
		Theme:             themeCSS(cfg.Theme),
		BodyBgHex:         cfg.Theme.BodyBg,
		CardHex:           cardHex(cfg.Theme.CardBg),
		Notice:            notice,
	}
}

// cardHex maps the card background to a value a color picker can hold. The
// default card background is a gradient, which pickers reject, so it falls
// back to the gradient's base tone.
func cardHex(cardBg string) string {
	if strings.HasPrefix(cardBg, "linear-gradient") {
		return "#071028"
	}
	return cardBg
}

func assetURL(filename string) string {
	return "/static/" + filename
}
