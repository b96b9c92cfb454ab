// Package assets loads theme background images for the renderer.
package assets

import (
	"context"
	"net/url"
	"strings"

	"github.com/PabloGalante/life-guide/internal/domain"
)

// Router sends http(s) references to Remote and everything else to Local.
type Router struct {
	Remote domain.ThemeAssetFetcher
	Local  domain.ThemeAssetFetcher
}

func NewRouter(remote, local domain.ThemeAssetFetcher) *Router {
	return &Router{Remote: remote, Local: local}
}

func (r *Router) Fetch(ctx context.Context, ref string) (domain.Asset, error) {
	if u, err := url.Parse(ref); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return r.Remote.Fetch(ctx, ref)
		}
	}
	return r.Local.Fetch(ctx, ref)
}
