package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Wuubzi/healthunity-client/internal/config"
)

// Uploader sube imágenes de perfil a Cloudinary con el mismo preset y
// carpeta que usa la app móvil.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	if cfg.CloudinaryCloud == "" {
		return nil, fmt.Errorf("cloudinary no configurado")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloud,
		cfg.CloudinaryKey,
		cfg.CloudinarySecret,
	)
	if err != nil {
		return nil, fmt.Errorf("inicializando cloudinary: %w", err)
	}

	return &Uploader{
		cld:    cld,
		preset: cfg.CloudinaryPreset,
		folder: cfg.CloudinaryFolder,
	}, nil
}

// UploadProfileImage sube el archivo local y devuelve la secure_url
// que después viaja en url_imagen del perfil.
func (u *Uploader) UploadProfileImage(ctx context.Context, path string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, path, uploader.UploadParams{
		UploadPreset: u.preset,
		Folder:       u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("subiendo imagen de perfil: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary no devolvió secure_url")
	}
	return resp.SecureURL, nil
}
