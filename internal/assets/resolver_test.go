package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacortez/portalgen/internal/diag"
	"github.com/jacortez/portalgen/internal/portal"
)

type fakeFetcher struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type fakeRenderer struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeRenderer) Capture(_ context.Context, _ string, _ bool) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type fakeDrawer struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeDrawer) Render(_ string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func newTestResolver(t *testing.T, fetcher RemoteFetcher, renderer Renderer, drawer Drawer) (*Resolver, string, *diag.MemorySink) {
	t.Helper()
	dir := t.TempDir()
	sink := diag.NewMemorySink()
	r, err := NewResolver(dir, fetcher, renderer, drawer, sink, nil)
	require.NoError(t, err)
	return r, dir, sink
}

func entry(title, url, imageRef string) portal.Entry {
	return portal.Entry{Title: title, URL: url, ImageRef: imageRef}
}

func TestResolveLocalFileSkipsNetworkAndCapture(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o600))

	fetcher := &fakeFetcher{}
	renderer := &fakeRenderer{data: []byte("shot")}
	r, dir, sink := newTestResolver(t, fetcher, renderer, &fakeDrawer{})

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", src), true, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Zero(t, fetcher.calls, "no network fetch for a local image")
	assert.Zero(t, renderer.calls, "no capture when the local image exists")
	assert.Empty(t, sink.Warnings())

	data, err := os.ReadFile(filepath.Join(dir, "assets", "gmail.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestResolveLocalCopyPreservesMetadata(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o640))
	srcInfo, err := os.Stat(src)
	require.NoError(t, err)

	r, dir, _ := newTestResolver(t, &fakeFetcher{}, nil, nil)
	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", src), false, false)
	require.Equal(t, "assets/gmail.png", rel)

	dstInfo, err := os.Stat(filepath.Join(dir, "assets", "gmail.png"))
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode(), dstInfo.Mode())
	assert.WithinDuration(t, srcInfo.ModTime(), dstInfo.ModTime(), time.Second)
}

func TestResolveRemoteURL(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{data: []byte("remote-image")}
	r, dir, sink := newTestResolver(t, fetcher, nil, nil)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", "https://example.com/pic.png"), false, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Equal(t, 1, fetcher.calls)
	assert.Empty(t, sink.Warnings())

	data, err := os.ReadFile(filepath.Join(dir, "assets", "gmail.png"))
	require.NoError(t, err)
	assert.Equal(t, "remote-image", string(data))
}

func TestResolveFetchFailureFallsThroughToCapture(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	renderer := &fakeRenderer{data: []byte("shot")}
	r, _, sink := newTestResolver(t, fetcher, renderer, nil)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", "https://example.com/pic.png"), true, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, renderer.calls)
	require.Len(t, sink.Warnings(), 1)
	assert.Contains(t, sink.Warnings()[0].Message, "download")
}

func TestResolveMissingLocalFallsThroughToPlaceholder(t *testing.T) {
	t.Parallel()

	drawer := &fakeDrawer{data: []byte("placeholder")}
	r, dir, sink := newTestResolver(t, &fakeFetcher{}, nil, drawer)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", "/no/such/file.png"), false, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Equal(t, 1, drawer.calls)
	require.Len(t, sink.Warnings(), 1)
	assert.Contains(t, sink.Warnings()[0].Message, "not found")

	data, err := os.ReadFile(filepath.Join(dir, "assets", "gmail.png"))
	require.NoError(t, err)
	assert.Equal(t, "placeholder", string(data))
}

func TestResolveCaptureFailureFallsThroughToPlaceholder(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{err: errors.New("navigation timeout")}
	drawer := &fakeDrawer{data: []byte("placeholder")}
	r, _, sink := newTestResolver(t, &fakeFetcher{}, renderer, drawer)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", ""), true, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, drawer.calls)
	require.NotEmpty(t, sink.Warnings())
	assert.Contains(t, sink.Warnings()[0].Message, "https://gmail.com")
}

func TestResolveCaptureDisabledSkipsRenderer(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{data: []byte("shot")}
	drawer := &fakeDrawer{data: []byte("placeholder")}
	r, _, _ := newTestResolver(t, &fakeFetcher{}, renderer, drawer)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", ""), false, false)
	assert.Equal(t, "assets/gmail.png", rel)
	assert.Zero(t, renderer.calls)
	assert.Equal(t, 1, drawer.calls)
}

func TestResolveExhaustedChainReturnsEmpty(t *testing.T) {
	t.Parallel()

	r, dir, _ := newTestResolver(t, &fakeFetcher{}, nil, nil)

	rel := r.Resolve(context.Background(), entry("Gmail", "https://gmail.com", ""), false, false)
	assert.Empty(t, rel)

	files, err := os.ReadDir(filepath.Join(dir, "assets"))
	require.NoError(t, err)
	assert.Empty(t, files, "no asset file when every strategy is exhausted")
}

func TestResolveSlugCollisionLastWriterWins(t *testing.T) {
	t.Parallel()

	drawer := &fakeDrawer{data: []byte("first")}
	r, dir, _ := newTestResolver(t, &fakeFetcher{}, nil, drawer)

	rel1 := r.Resolve(context.Background(), entry("My Site", "https://a.example", ""), false, false)
	drawer.data = []byte("second")
	rel2 := r.Resolve(context.Background(), entry("my site", "https://b.example", ""), false, false)

	assert.Equal(t, rel1, rel2)

	files, err := os.ReadDir(filepath.Join(dir, "assets"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(filepath.Join(dir, "assets", "my-site.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data), "later entry overwrites the earlier asset")
}

func TestTargetName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gmail.png", TargetName("Gmail"))
	assert.Equal(t, "item.png", TargetName("!!!"))

	long := "This Title Is Long Enough To Exceed The Forty Character Slug Limit For Sure"
	name := TargetName(long)
	assert.Len(t, []rune(name), 40+len(Ext))
}

func TestIsWebURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com/pic.png", true},
		{"http://example.com", true},
		{"ftp://example.com/file", false},
		{"images/logo.png", false},
		{"/abs/path.png", false},
		{"", false},
		{"://bad", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsWebURL(tc.in), "IsWebURL(%q)", tc.in)
	}
}
