package service

import (
	"context"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/policy"
	"reviewhub/internal/httpapi/repository"
)

type ReviewService interface {
	ListByTitle(ctx context.Context, titleID int64, page, pageSize int) ([]models.Review, int64, error)
	Get(ctx context.Context, titleID, reviewID int64) (*models.Review, error)
	Create(ctx context.Context, titleID int64, actor policy.Actor, d dto.CreateReviewDTO) (*models.Review, error)
	Update(ctx context.Context, titleID, reviewID int64, actor policy.Actor, d dto.UpdateReviewDTO) (*models.Review, error)
	Delete(ctx context.Context, titleID, reviewID int64, actor policy.Actor) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo repository.TitleRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
	}
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, page, pageSize int) ([]models.Review, int64, error) {
	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.ListByTitle(ctx, titleID, page, pageSize)
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	return s.reviewRepo.FindByID(ctx, titleID, reviewID)
}

func (s *reviewService) Create(ctx context.Context, titleID int64, actor policy.Actor, d dto.CreateReviewDTO) (*models.Review, error) {
	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		return nil, err
	}
	if err := validateScore(d.Score); err != nil {
		return nil, err
	}

	// Pre-check for a friendly message; the unique constraint on
	// (title_id, author_id) still catches concurrent submissions.
	exists, err := s.reviewRepo.ExistsByTitleAndAuthor(ctx, titleID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Validation("", "you have already reviewed this title")
	}

	review := &models.Review{
		TitleID:  titleID,
		AuthorID: actor.ID,
		Text:     d.Text,
		Score:    d.Score,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Reload with the author for the response representation.
	return s.reviewRepo.FindByID(ctx, titleID, review.ID)
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, actor policy.Actor, d dto.UpdateReviewDTO) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyContent(actor, review.AuthorID) {
		return nil, apierror.ErrForbidden
	}

	if d.Text != nil {
		review.Text = *d.Text
	}
	if d.Score != nil {
		if err := validateScore(*d.Score); err != nil {
			return nil, err
		}
		review.Score = *d.Score
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, actor policy.Actor) error {
	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if !policy.CanModifyContent(actor, review.AuthorID) {
		return apierror.ErrForbidden
	}
	return s.reviewRepo.Delete(ctx, review)
}
