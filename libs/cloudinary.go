package libs

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

// CloudinaryImageStore keeps product images on Cloudinary. The reference kept
// in the product row is the secure delivery URL.
type CloudinaryImageStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryImageStore(cloudinaryURL, folder string) (*CloudinaryImageStore, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryImageStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     strings.TrimSuffix(name, path.Ext(name)),
		Folder:       s.folder,
		ResourceType: "image",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil || resp.Error.Message != "" {
		msg := "empty response"
		if resp != nil {
			msg = resp.Error.Message
		}
		return "", fmt.Errorf("cloudinary upload rejected: %s", msg)
	}

	log.Debug().Str("public_id", resp.PublicID).Msg("image uploaded to cloudinary")

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

func (s *CloudinaryImageStore) Delete(ctx context.Context, ref string) error {
	publicID := s.PublicID(ref)
	if publicID == "" {
		return nil
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}

// PublicID recovers "<folder>/<name>" from a delivery URL.
func (s *CloudinaryImageStore) PublicID(ref string) string {
	if ref == "" {
		return ""
	}

	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}

	base := path.Base(p)
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "" || name == "." || name == "/" {
		return ""
	}
	if s.folder == "" {
		return name
	}
	return s.folder + "/" + name
}
