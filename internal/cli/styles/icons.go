package styles

import "github.com/bnema/pinboard/internal/domain/entity"

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconPin      = "" // thumb tack
	IconCookie   = "" // cookie
	IconDatabase = "" // local storage
	IconClock    = "" // session storage
	IconSearch   = "" // search
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconMissing  = "" // question
)

// TypeIcon returns the icon for a property type.
func TypeIcon(t entity.PropertyType) string {
	switch t {
	case entity.PropertyTypeCookie:
		return IconCookie
	case entity.PropertyTypeSessionStorage:
		return IconClock
	default:
		return IconDatabase
	}
}
