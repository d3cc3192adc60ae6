package cdn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argview/argview/cdn"
)

var c = cdn.New("https://cdn.example.com/")

func TestAvatar(t *testing.T) {
	asset, err := c.Avatar(80088335, "8342729096ea3675442027381ff50dfe")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/80088335/8342729096ea3675442027381ff50dfe.webp?size=1024", asset.URL())
}

func TestAvatarAnimatedDefaultsToGIF(t *testing.T) {
	asset, err := c.Avatar(1, "a_deadbeef")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/1/a_deadbeef.gif?size=1024", asset.URL())

	// A static format only applies to non-animated avatars.
	asset, err = c.Avatar(1, "a_deadbeef", cdn.WithStaticFormat(cdn.FormatPNG))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/1/a_deadbeef.gif?size=1024", asset.URL())
}

func TestAvatarFormatOverrides(t *testing.T) {
	asset, err := c.Avatar(1, "abc", cdn.WithStaticFormat(cdn.FormatPNG))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/1/abc.png?size=1024", asset.URL())

	asset, err = c.Avatar(1, "a_abc", cdn.WithFormat(cdn.FormatJPEG))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/1/a_abc.jpeg?size=1024", asset.URL())
}

func TestAvatarSize(t *testing.T) {
	asset, err := c.Avatar(1, "abc", cdn.WithSize(16))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/avatars/1/abc.webp?size=16", asset.URL())

	for _, size := range []int{0, 8, 100, 2048, -16} {
		_, err := c.Avatar(1, "abc", cdn.WithSize(size))
		require.Error(t, err, "size %d", size)
	}
}

func TestAvatarFormatValidation(t *testing.T) {
	_, err := c.Avatar(1, "abc", cdn.WithFormat("bmp"))
	require.Error(t, err)

	_, err = c.Avatar(1, "abc", cdn.WithFormat(cdn.FormatGIF))
	require.Error(t, err)

	_, err = c.Avatar(1, "abc", cdn.WithStaticFormat(cdn.FormatGIF))
	require.Error(t, err)
}

func TestAvatarEmptyHash(t *testing.T) {
	asset, err := c.Avatar(1, "")
	require.NoError(t, err)
	require.Equal(t, cdn.Asset{}, asset)
	require.Equal(t, "", asset.URL())

	// Options are validated even when there is no asset to point at.
	_, err = c.Avatar(1, "", cdn.WithSize(3))
	require.Error(t, err)
}

func TestGuildImage(t *testing.T) {
	asset, err := c.GuildImage(cdn.ImageIcon, 41771983423143937, "86e39f7ae3307e811784e2ffd11a7310")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/icons/41771983423143937/86e39f7ae3307e811784e2ffd11a7310.webp?size=1024", asset.URL())

	asset, err = c.GuildImage(cdn.ImageSplash, 2, "abc", cdn.WithSize(4096))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/splashes/2/abc.webp?size=4096", asset.URL())

	asset, err = c.GuildImage(cdn.ImageBanner, 3, "abc", cdn.WithFormat(cdn.FormatJPG))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/banners/3/abc.jpg?size=1024", asset.URL())
}

func TestGuildImageValidation(t *testing.T) {
	_, err := c.GuildImage(cdn.ImageKind("emoji"), 1, "abc")
	require.Error(t, err)

	// Guild images are always static.
	_, err = c.GuildImage(cdn.ImageIcon, 1, "abc", cdn.WithFormat(cdn.FormatGIF))
	require.Error(t, err)

	_, err = c.GuildImage(cdn.ImageIcon, 1, "abc", cdn.WithSize(8192))
	require.Error(t, err)

	asset, err := c.GuildImage(cdn.ImageIcon, 1, "")
	require.NoError(t, err)
	require.Equal(t, "", asset.URL())
}

func TestDefaultAvatar(t *testing.T) {
	require.Equal(t, "https://cdn.example.com/embed/avatars/3.png", c.DefaultAvatar(3).URL())
	require.Equal(t, "https://cdn.example.com/embed/avatars/2.png", c.DefaultAvatar(7).URL())
	require.Equal(t, "https://cdn.example.com/embed/avatars/2.png", c.DefaultAvatar(-7).URL())
}

func TestAnimated(t *testing.T) {
	require.True(t, cdn.Animated("a_deadbeef"))
	require.False(t, cdn.Animated("deadbeef"))
	require.False(t, cdn.Animated(""))
}
