package service

import (
	"context"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"
)

type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter, page, pageSize int) ([]models.Title, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Title, error)
	Create(ctx context.Context, d dto.CreateTitleDTO) (*models.Title, error)
	Update(ctx context.Context, id int64, d dto.UpdateTitleDTO) (*models.Title, error)
	Delete(ctx context.Context, id int64) error
}

type titleService struct {
	titleRepo    repository.TitleRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
}

func NewTitleService(
	titleRepo repository.TitleRepository,
	categoryRepo repository.CategoryRepository,
	genreRepo repository.GenreRepository,
) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
	}
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter, page, pageSize int) ([]models.Title, int64, error) {
	return s.titleRepo.List(ctx, filter, page, pageSize)
}

func (s *titleService) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	return s.titleRepo.GetByID(ctx, id)
}

func (s *titleService) Create(ctx context.Context, d dto.CreateTitleDTO) (*models.Title, error) {
	if err := validateYear(d.Year); err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        d.Name,
		Year:        d.Year,
		Description: d.Description,
	}

	if d.Category != nil {
		category, err := s.resolveCategory(ctx, *d.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	if len(d.Genre) > 0 {
		genres, err := s.resolveGenres(ctx, d.Genre)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	}

	if err := s.titleRepo.Create(ctx, title); err != nil {
		return nil, err
	}
	// Reload so the response carries nested objects and the rating field.
	return s.titleRepo.GetByID(ctx, title.ID)
}

func (s *titleService) Update(ctx context.Context, id int64, d dto.UpdateTitleDTO) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Name != nil {
		title.Name = *d.Name
	}
	if d.Year != nil {
		if err := validateYear(*d.Year); err != nil {
			return nil, err
		}
		title.Year = *d.Year
	}
	if d.Description != nil {
		title.Description = *d.Description
	}
	if d.Category != nil {
		category, err := s.resolveCategory(ctx, *d.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	if err := s.titleRepo.Update(ctx, title); err != nil {
		return nil, err
	}

	if d.Genre != nil {
		genres, err := s.resolveGenres(ctx, *d.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.titleRepo.ReplaceGenres(ctx, title, genres); err != nil {
			return nil, err
		}
	}

	return s.titleRepo.GetByID(ctx, id)
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	return s.titleRepo.Delete(ctx, id)
}

// resolveCategory turns a slug reference into a stored category. An unknown
// slug is a validation failure on the write payload, not a 404.
func (s *titleService) resolveCategory(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if apierror.IsNotFound(err) {
			return nil, apierror.Validation("category", "no category with slug "+slug)
		}
		return nil, err
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]models.Genre, error) {
	genres, err := s.genreRepo.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(slugs) {
		found := make(map[string]bool, len(genres))
		for _, g := range genres {
			found[g.Slug] = true
		}
		for _, slug := range slugs {
			if !found[slug] {
				return nil, apierror.Validation("genre", "no genre with slug "+slug)
			}
		}
	}
	return genres, nil
}
