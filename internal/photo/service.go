package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/courtsidehq/venue-booking-backend/internal/pkg/storage"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

const (
	thumbMaxWidth  = 480
	thumbMaxHeight = 320
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadRequest struct {
	VenueID     string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Service interface {
	Upload(ctx context.Context, req UploadRequest, uploaderUserID string, isAdmin bool) (*Photo, error)
	ListByVenue(ctx context.Context, venueID string) ([]*Photo, error)
	Open(ctx context.Context, id string, thumbnail bool) (*Photo, io.ReadCloser, error)
	Delete(ctx context.Context, id, callerUserID string, isAdmin bool) error
}

type service struct {
	repo         Repository
	venueService venue.Service
	store        storage.Storage
	images       *storage.ImageProcessor
}

func NewService(repo Repository, venueService venue.Service, store storage.Storage, images *storage.ImageProcessor) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
		store:        store,
		images:       images,
	}
}

func (s *service) Upload(ctx context.Context, req UploadRequest, uploaderUserID string, isAdmin bool) (*Photo, error) {
	ext, ok := allowedTypes[req.ContentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if req.Size > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	v, err := s.venueService.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, ErrInvalidVenue
	}
	if !isAdmin && v.OwnerID != uploaderUserID {
		return nil, ErrPermissionDenied
	}

	// The content is read twice: once for the original, once for the
	// thumbnail. Buffer it up front.
	raw, err := io.ReadAll(io.LimitReader(req.Content, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload failed: %w", err)
	}
	if int64(len(raw)) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	name := uuid.NewString()
	path := fmt.Sprintf("venues/%s/%s%s", req.VenueID, name, ext)
	thumbPath := fmt.Sprintf("venues/%s/%s_thumb.jpg", req.VenueID, name)

	if err := s.store.Save(ctx, path, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("store photo failed: %w", err)
	}

	thumb, err := s.images.GenerateThumbnail(bytes.NewReader(raw), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		s.store.Delete(ctx, path)
		return nil, ErrUnsupportedType
	}
	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		s.store.Delete(ctx, path)
		return nil, fmt.Errorf("store thumbnail failed: %w", err)
	}

	p := &Photo{
		VenueID:     req.VenueID,
		Path:        path,
		ThumbPath:   thumbPath,
		ContentType: req.ContentType,
		SizeBytes:   int64(len(raw)),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.store.Delete(ctx, path)
		s.store.Delete(ctx, thumbPath)
		return nil, err
	}

	return p, nil
}

func (s *service) ListByVenue(ctx context.Context, venueID string) ([]*Photo, error) {
	return s.repo.ListByVenue(ctx, venueID)
}

func (s *service) Open(ctx context.Context, id string, thumbnail bool) (*Photo, io.ReadCloser, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	path := p.Path
	if thumbnail {
		path = p.ThumbPath
	}

	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open photo blob failed: %w", err)
	}
	return p, rc, nil
}

func (s *service) Delete(ctx context.Context, id, callerUserID string, isAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	v, err := s.venueService.GetByID(ctx, p.VenueID)
	if err != nil {
		return ErrInvalidVenue
	}
	if !isAdmin && v.OwnerID != callerUserID {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Blob cleanup is best-effort; the row is already gone.
	if err := s.store.Delete(ctx, p.Path); err != nil {
		log.Printf("delete photo blob %s failed: %v", p.Path, err)
	}
	if err := s.store.Delete(ctx, p.ThumbPath); err != nil {
		log.Printf("delete thumbnail blob %s failed: %v", p.ThumbPath, err)
	}
	return nil
}
