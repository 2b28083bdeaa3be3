package establishment

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
)

var ErrNoEstablishment = errors.New("establishment not found")

// LogoUploader is the object-storage collaborator.
type LogoUploader interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Service struct {
	repo     Repository
	uploader LogoUploader
}

func NewService(repo Repository, uploader LogoUploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

// UpdateInput is the validated settings form.
type UpdateInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Settings Settings
}

func (s *Service) Get(ctx context.Context, establishmentID string) (*Establishment, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.Get(ctx, establishmentID)
}

func (s *Service) Update(ctx context.Context, establishmentID string, in UpdateInput) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return errors.New("missing required fields")
	}
	if in.Settings.DeliveryFee < 0 || in.Settings.DeliveryFreeThreshold < 0 {
		return errors.New("delivery values cannot be negative")
	}

	return s.repo.Update(ctx, establishmentID, in.Name, in.Email, in.Phone, in.Address, in.Settings)
}

func (s *Service) UploadLogo(
	ctx context.Context,
	establishmentID string,
	file *multipart.FileHeader,
) (string, error) {

	if establishmentID == "" {
		return "", ErrNoEstablishment
	}

	key := "logos/" + establishmentID + "/" + file.Filename
	url, err := s.uploader.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateLogo(ctx, establishmentID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return errors.New("missing required fields")
	}
	return s.repo.UpdateProfile(ctx, userID, name, email)
}
