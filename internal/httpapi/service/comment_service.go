package service

import (
	"context"

	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/policy"
	"reviewhub/internal/httpapi/repository"
)

type CommentService interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, page, pageSize int) ([]models.Comment, int64, error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.Comment, error)
	Create(ctx context.Context, titleID, reviewID int64, actor policy.Actor, d dto.CreateCommentDTO) (*models.Comment, error)
	Update(ctx context.Context, titleID, reviewID, commentID int64, actor policy.Actor, d dto.UpdateCommentDTO) (*models.Comment, error)
	Delete(ctx context.Context, titleID, reviewID, commentID int64, actor policy.Actor) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// resolveReview checks the title→review hierarchy: a review that does not
// belong to the stated title is a 404, not a different review.
func (s *commentService) resolveReview(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	return s.reviewRepo.FindByID(ctx, titleID, reviewID)
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, page, pageSize int) ([]models.Comment, int64, error) {
	if _, err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.ListByReview(ctx, reviewID, page, pageSize)
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.Comment, error) {
	if _, err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByID(ctx, reviewID, commentID)
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID int64, actor policy.Actor, d dto.CreateCommentDTO) (*models.Comment, error) {
	if _, err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     d.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByID(ctx, reviewID, comment.ID)
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID int64, actor policy.Actor, d dto.UpdateCommentDTO) (*models.Comment, error) {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyContent(actor, comment.AuthorID) {
		return nil, apierror.ErrForbidden
	}

	if d.Text != nil {
		comment.Text = *d.Text
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID int64, actor policy.Actor) error {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if !policy.CanModifyContent(actor, comment.AuthorID) {
		return apierror.ErrForbidden
	}
	return s.commentRepo.Delete(ctx, comment)
}
