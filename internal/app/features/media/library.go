// internal/app/features/media/library.go

// Package media implements the media library endpoints backed by
// Cloudinary's admin API. Listing uses the upstream cursor; the total
// shown in pagination is approximate (counted by walking pages up to a
// probe cap).
package media

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
)

// Asset is one image in the library.
type Asset struct {
	PublicID  string    `json:"public_id"`
	Format    string    `json:"format"`
	URL       string    `json:"url"`
	Bytes     int       `json:"bytes"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is one cursor page of assets. An empty NextCursor means the
// listing is exhausted.
type Page struct {
	Assets     []Asset
	NextCursor string
}

// Library is the upstream asset store. The Cloudinary client satisfies
// it in production; tests substitute a fake.
type Library interface {
	List(ctx context.Context, cursor string, max int) (Page, error)
	Delete(ctx context.Context, publicIDs []string) error
}

type cloudinaryLibrary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryLibrary connects to a Cloudinary account.
func NewCloudinaryLibrary(cloudName, apiKey, apiSecret string) (Library, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &cloudinaryLibrary{cld: cld}, nil
}

func (l *cloudinaryLibrary) List(ctx context.Context, cursor string, max int) (Page, error) {
	res, err := l.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:  api.Image,
		MaxResults: max,
		NextCursor: cursor,
	})
	if err != nil {
		return Page{}, err
	}

	page := Page{NextCursor: res.NextCursor}
	page.Assets = make([]Asset, 0, len(res.Assets))
	for _, a := range res.Assets {
		page.Assets = append(page.Assets, Asset{
			PublicID:  a.PublicID,
			Format:    a.Format,
			URL:       a.SecureURL,
			Bytes:     a.Bytes,
			Width:     a.Width,
			Height:    a.Height,
			CreatedAt: a.CreatedAt,
		})
	}
	return page, nil
}

func (l *cloudinaryLibrary) Delete(ctx context.Context, publicIDs []string) error {
	ids := make(api.CldAPIArray, len(publicIDs))
	copy(ids, publicIDs)
	_, err := l.cld.Admin.DeleteAssets(ctx, admin.DeleteAssetsParams{PublicIDs: ids})
	return err
}
