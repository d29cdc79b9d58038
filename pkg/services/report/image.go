package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/gabriel-vasile/mimetype"
)

const maxImageSize = 32 << 20

// ImageResolver checks and loads image references. Local references are
// filesystem paths or file:// URLs and must stay inside BaseDir (the working
// directory when empty); symlinks leaving it are rejected too. Absolute http(s)
// URLs are accepted only when AllowRemote is set.
type ImageResolver struct {
	BaseDir     string
	AllowRemote bool
	Client      *http.Client
}

type ImageResolverOption func(*ImageResolver)

// WithRemoteImages lets the resolver fetch http(s) references.
func WithRemoteImages() ImageResolverOption {
	return func(r *ImageResolver) {
		r.AllowRemote = true
	}
}

func NewImageResolver(baseDir string, options ...ImageResolverOption) *ImageResolver {
	r := &ImageResolver{
		BaseDir: baseDir,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Image is a loaded image resource.
type Image struct {
	Ref  string
	Data []byte
	MIME string
}

func unresolved(ref string, err error) error {
	if err != nil {
		return domain.WrapError(domain.ErrResource, err, "image %q could not be resolved", ref)
	}
	return domain.NewError(domain.ErrResource, "image %q could not be resolved", ref)
}

func isRemote(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (r *ImageResolver) baseDir() string {
	if r.BaseDir == "" {
		return "."
	}
	return r.BaseDir
}

// localPath returns ref relative to the base directory, refusing anything
// that points outside of it.
func (r *ImageResolver) localPath(ref string) (string, error) {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Scheme == "file" {
		p = u.Path
	}
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		base, err := filepath.Abs(r.baseDir())
		if err != nil {
			return "", err
		}
		if p, err = filepath.Rel(base, p); err != nil {
			return "", errOutsideBase
		}
	}
	p = filepath.Clean(p)
	if p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		return "", errOutsideBase
	}
	return p, nil
}

var (
	errOutsideBase    = errors.New("path is outside the image directory")
	errRemoteDisabled = errors.New("remote images are disabled")
)

// Resolve verifies that the reference points at something loadable without
// fetching remote content. Local files must exist and be regular files.
func (r *ImageResolver) Resolve(ref string) error {
	if ref == "" {
		return unresolved(ref, nil)
	}
	if u, err := url.Parse(ref); err == nil && isRemote(u) {
		if !r.AllowRemote {
			return unresolved(ref, errRemoteDisabled)
		}
		return nil
	}
	root, p, err := r.openLocal(ref)
	if err != nil {
		return unresolved(ref, err)
	}
	defer root.Close()
	info, err := root.Stat(p)
	if err != nil {
		return unresolved(ref, err)
	}
	if !info.Mode().IsRegular() {
		return unresolved(ref, nil)
	}
	return nil
}

func (r *ImageResolver) openLocal(ref string) (*os.Root, string, error) {
	p, err := r.localPath(ref)
	if err != nil {
		return nil, "", err
	}
	root, err := os.OpenRoot(r.baseDir())
	if err != nil {
		return nil, "", err
	}
	return root, p, nil
}

// Load reads the referenced image and sniffs its MIME type.
func (r *ImageResolver) Load(ctx context.Context, ref string) (*Image, error) {
	if err := r.Resolve(ref); err != nil {
		return nil, err
	}

	var data []byte
	var err error
	if u, perr := url.Parse(ref); perr == nil && isRemote(u) {
		data, err = r.fetch(ctx, ref)
	} else {
		data, err = r.readLocal(ref)
	}
	if err != nil {
		return nil, unresolved(ref, err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, domain.NewError(domain.ErrResource, "image %q has unsupported content type %s", ref, mtype.String())
	}
	return &Image{Ref: ref, Data: data, MIME: mtype.String()}, nil
}

func (r *ImageResolver) readLocal(ref string) ([]byte, error) {
	root, p, err := r.openLocal(ref)
	if err != nil {
		return nil, err
	}
	defer root.Close()
	f, err := root.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImageSize))
}

func (r *ImageResolver) fetch(ctx context.Context, ref string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
}
