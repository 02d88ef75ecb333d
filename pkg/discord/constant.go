package discord

import (
	"errors"
	"time"
)

const (
	defaultWebhookBaseURL = "https://discord.com/api/webhooks"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	ReportBugDescLen  = 4096
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "Directory API"
	UserAgent       = "Directory-API-Bot/1.0"
	ReportBugTitle  = "Directory API Error Report"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")
