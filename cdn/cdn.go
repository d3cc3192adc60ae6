// Package cdn builds validated CDN asset URLs: user avatars, guild
// images and stock default avatars. It only constructs URLs; fetching
// them is up to the caller's HTTP layer.
package cdn

import (
	"fmt"
	"strings"
)

// Image formats assets can be requested in. Animated assets additionally
// support FormatGIF.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
)

const (
	defaultSize   = 1024
	minSize       = 16
	maxAvatarSize = 1024
	maxGuildSize  = 4096

	// The CDN serves five stock avatars for accounts without a custom
	// one.
	stockAvatars = 5
)

// An ImageKind selects which guild image a URL points at.
type ImageKind string

const (
	ImageIcon   ImageKind = "icon"
	ImageSplash ImageKind = "splash"
	ImageBanner ImageKind = "banner"
)

// An Asset is a fully-formed CDN asset URL. The zero value means the
// entity has no such asset.
type Asset struct {
	url string
}

// URL returns the asset URL, or the empty string for the zero Asset.
func (a Asset) URL() string { return a.url }

func (a Asset) String() string { return a.url }

// A CDN builds asset URLs relative to a base URL. The zero value is not
// useful; construct one with New.
type CDN struct {
	base string
}

// New returns a CDN rooted at base, eg. "https://cdn.example.com". A
// trailing slash on base is ignored.
func New(base string) CDN {
	return CDN{base: strings.TrimRight(base, "/")}
}

type config struct {
	format       string
	staticFormat string
	size         int
}

// An Option adjusts the format or size of a built asset URL.
type Option func(c *config)

// WithFormat forces the asset's image format instead of deriving it from
// the asset hash.
func WithFormat(format string) Option {
	return func(c *config) { c.format = format }
}

// WithStaticFormat sets the format used when an avatar is not animated.
// The default is webp.
func WithStaticFormat(format string) Option {
	return func(c *config) { c.staticFormat = format }
}

// WithSize sets the size query of the asset URL. Sizes are powers of two
// between 16 and a per-route maximum: 1024 for avatars, 4096 for guild
// images.
func WithSize(size int) Option {
	return func(c *config) { c.size = size }
}

// Animated reports whether an asset hash denotes an animated asset.
func Animated(hash string) bool { return strings.HasPrefix(hash, "a_") }

// Avatar builds the URL of a user's avatar. Animated avatars default to
// gif, static ones to the static format. An empty hash means the user has
// no custom avatar and yields the zero Asset; see DefaultAvatar.
func (c CDN) Avatar(id uint64, hash string, options ...Option) (Asset, error) {
	cfg := apply(options)
	if !validSize(cfg.size, maxAvatarSize) {
		return Asset{}, fmt.Errorf("size must be a power of 2 between %d and %d", minSize, maxAvatarSize)
	}
	if cfg.format != "" && !validAvatarFormat(cfg.format) {
		return Asset{}, fmt.Errorf("format must be one of webp, png, jpg, jpeg or gif, not %q", cfg.format)
	}
	if cfg.format == FormatGIF && !Animated(hash) {
		return Asset{}, fmt.Errorf("non-animated avatars do not support the gif format")
	}
	if !validStaticFormat(cfg.staticFormat) {
		return Asset{}, fmt.Errorf("static format must be one of webp, png, jpg or jpeg, not %q", cfg.staticFormat)
	}
	if hash == "" {
		return Asset{}, nil
	}

	format := cfg.format
	if format == "" {
		if Animated(hash) {
			format = FormatGIF
		} else {
			format = cfg.staticFormat
		}
	}
	return Asset{url: fmt.Sprintf("%s/avatars/%d/%s.%s?size=%d", c.base, id, hash, format, cfg.size)}, nil
}

// GuildImage builds the URL of one of a guild's images: its icon, invite
// splash or banner. Guild images are always static; WithFormat selects
// among the static formats, webp by default. An empty hash yields the
// zero Asset.
func (c CDN) GuildImage(kind ImageKind, id uint64, hash string, options ...Option) (Asset, error) {
	switch kind {
	case ImageIcon, ImageSplash, ImageBanner:
	default:
		return Asset{}, fmt.Errorf("unknown guild image kind %q", kind)
	}
	cfg := apply(options)
	if !validSize(cfg.size, maxGuildSize) {
		return Asset{}, fmt.Errorf("size must be a power of 2 between %d and %d", minSize, maxGuildSize)
	}
	format := cfg.format
	if format == "" {
		format = FormatWebP
	}
	if !validStaticFormat(format) {
		return Asset{}, fmt.Errorf("format must be one of webp, png, jpg or jpeg, not %q", format)
	}
	if hash == "" {
		return Asset{}, nil
	}
	return Asset{url: fmt.Sprintf("%s/%s/%d/%s.%s?size=%d", c.base, plural(kind), id, hash, format, cfg.size)}, nil
}

// DefaultAvatar builds the URL of the stock avatar shown for accounts
// without a custom one. The discriminator selects among the stock
// avatars, wrapping around.
func (c CDN) DefaultAvatar(discriminator int) Asset {
	if discriminator < 0 {
		discriminator = -discriminator
	}
	return Asset{url: fmt.Sprintf("%s/embed/avatars/%d.png", c.base, discriminator%stockAvatars)}
}

func apply(options []Option) config {
	cfg := config{staticFormat: FormatWebP, size: defaultSize}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

func plural(kind ImageKind) string {
	if kind == ImageSplash {
		return "splashes"
	}
	return string(kind) + "s"
}

func validSize(size, max int) bool {
	return size >= minSize && size <= max && size&(size-1) == 0
}

func validStaticFormat(format string) bool {
	switch format {
	case FormatWebP, FormatPNG, FormatJPG, FormatJPEG:
		return true
	}
	return false
}

func validAvatarFormat(format string) bool {
	return format == FormatGIF || validStaticFormat(format)
}
