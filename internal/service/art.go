package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/storage"
	"artdesk.app/api/internal/store"
)

var (
	ErrArtNotFound      = errors.New("art not found")
	ErrArtTitle         = errors.New("art title is required")
	ErrArtApproved      = errors.New("approved arts cannot be updated")
	ErrInvalidArtStatus = errors.New("art status is not in the allowed set")
	ErrCommentText      = errors.New("comment text is required")
)

type ArtService interface {
	Create(ctx context.Context, actorID, taskID int64, title, filename string, data []byte) (*model.Art, error)
	Get(ctx context.Context, actorID, artID int64) (*model.Art, error)
	ListByTask(ctx context.Context, actorID, taskID int64) ([]model.Art, error)
	Update(ctx context.Context, actorID, artID int64, title, filename string, data []byte) (*model.Art, error)
	Delete(ctx context.Context, actorID, artID int64) error
	Review(ctx context.Context, actorID, artID int64, status model.ArtStatus, feedback *string) (*model.Art, error)
	AddComment(ctx context.Context, actorID, artID int64, x, y int32, text string) (*model.ArtComment, error)
	ListComments(ctx context.Context, actorID, artID int64) ([]model.ArtComment, error)
	ListFeedback(ctx context.Context, actorID, artID int64) ([]model.ArtFeedback, error)
}

type artService struct {
	authorizer       Authorizer
	artStore         store.ArtStore
	artCommentStore  store.ArtCommentStore
	artFeedbackStore store.ArtFeedbackStore
	txRunner         TxRunner
	cascader         *Cascader
	files            storage.FileStore
}

func NewArtService(
	authorizer Authorizer,
	artStore store.ArtStore,
	artCommentStore store.ArtCommentStore,
	artFeedbackStore store.ArtFeedbackStore,
	txRunner TxRunner,
	cascader *Cascader,
	files storage.FileStore,
) ArtService {
	return &artService{
		authorizer:       authorizer,
		artStore:         artStore,
		artCommentStore:  artCommentStore,
		artFeedbackStore: artFeedbackStore,
		txRunner:         txRunner,
		cascader:         cascader,
		files:            files,
	}
}

func (s *artService) Create(ctx context.Context, actorID, taskID int64, title, filename string, data []byte) (*model.Art, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrArtTitle
	}

	clientID, err := s.authorizer.ClientIDForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesEditors...); err != nil {
		return nil, err
	}

	artID := id.New()
	storedPath, err := s.files.Store(ctx, data, workingPath(artID, filename))
	if err != nil {
		return nil, fmt.Errorf("storing art file: %w", err)
	}

	art := &model.Art{
		ID:     artID,
		TaskID: taskID,
		Title:  title,
		Path:   storedPath,
		Status: model.ArtStatusPending,
	}

	if err := s.artStore.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("creating art: %w", err)
	}

	slog.InfoContext(ctx, "art created",
		"art_id", art.ID,
		"task_id", taskID,
		"created_by", actorID,
	)

	return art, nil
}

func (s *artService) Get(ctx context.Context, actorID, artID int64) (*model.Art, error) {
	art, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return art, nil
}

func (s *artService) ListByTask(ctx context.Context, actorID, taskID int64) ([]model.Art, error) {
	clientID, err := s.authorizer.ClientIDForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.artStore.ListByTask(ctx, taskID)
}

func (s *artService) Update(ctx context.Context, actorID, artID int64, title, filename string, data []byte) (*model.Art, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrArtTitle
	}

	art, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesEditors...); err != nil {
		return nil, err
	}

	// Once the reviewer signed off, the deliverable is frozen.
	if art.Status == model.ArtStatusApproved {
		return nil, ErrArtApproved
	}

	art.Title = title
	if len(data) > 0 {
		oldPath := art.Path
		newPath, err := s.files.Store(ctx, data, workingPath(artID, filename))
		if err != nil {
			return nil, fmt.Errorf("storing art file: %w", err)
		}
		art.Path = newPath
		if oldPath != "" && oldPath != newPath {
			if err := s.files.Delete(ctx, oldPath); err != nil && !errors.Is(err, storage.ErrNotFound) {
				slog.WarnContext(ctx, "failed to delete replaced art file",
					"art_id", artID,
					"path", oldPath,
					"error", err,
				)
			}
		}
	}

	if err := s.artStore.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("updating art: %w", err)
	}
	return art, nil
}

func (s *artService) Delete(ctx context.Context, actorID, artID int64) error {
	_, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesEditors...); err != nil {
		return err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.SoftDelete(ctx, stores, KindArt, artID)
	})
	if err != nil {
		return fmt.Errorf("deleting art: %w", err)
	}

	slog.InfoContext(ctx, "art soft-deleted",
		"art_id", artID,
		"deleted_by", actorID,
	)
	return nil
}

// Review sets the art's status on behalf of the client reviewer. Any
// member of the closed status set may be chosen. An optional feedback
// note is persisted alongside. Approval relocates the file to the
// reviewer's approved directory; the relocation runs after the status
// write, so a storage failure leaves an approved art whose path has not
// moved yet. Such an art is picked up by re-running the review.
func (s *artService) Review(ctx context.Context, actorID, artID int64, status model.ArtStatus, feedback *string) (*model.Art, error) {
	if !status.Valid() {
		return nil, ErrInvalidArtStatus
	}

	_, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesReviewer...); err != nil {
		return nil, err
	}

	updated, err := s.artStore.UpdateStatus(ctx, artID, status)
	if err != nil {
		return nil, fmt.Errorf("updating art status: %w", err)
	}

	if feedback != nil && strings.TrimSpace(*feedback) != "" {
		record := &model.ArtFeedback{
			ID:       id.New(),
			ArtID:    artID,
			UserID:   actorID,
			Feedback: *feedback,
		}
		if err := s.artFeedbackStore.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("recording feedback: %w", err)
		}
	}

	if status == model.ArtStatusApproved {
		newPath := approvedPath(clientID, actorID, updated.Path)
		if newPath != updated.Path {
			if err := s.files.Move(ctx, updated.Path, newPath); err != nil {
				return nil, fmt.Errorf("relocating approved art: %w", err)
			}
			updated, err = s.artStore.UpdatePath(ctx, artID, newPath)
			if err != nil {
				return nil, fmt.Errorf("updating art path: %w", err)
			}
		}
	}

	slog.InfoContext(ctx, "art reviewed",
		"art_id", artID,
		"status", status,
		"reviewed_by", actorID,
	)

	return updated, nil
}

// AddComment records a pixel-anchored annotation and unconditionally
// forces the art back to revision_requested, whatever its prior status.
func (s *artService) AddComment(ctx context.Context, actorID, artID int64, x, y int32, text string) (*model.ArtComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentText
	}

	_, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesReviewer...); err != nil {
		return nil, err
	}

	comment := &model.ArtComment{
		ID:      id.New(),
		ArtID:   artID,
		UserID:  actorID,
		X:       x,
		Y:       y,
		Comment: text,
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.ArtComments().Create(ctx, comment); err != nil {
			return err
		}
		_, err := stores.Arts().UpdateStatus(ctx, artID, model.ArtStatusRevisionRequested)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	slog.InfoContext(ctx, "art comment added",
		"art_id", artID,
		"comment_id", comment.ID,
		"author_id", actorID,
	)

	return comment, nil
}

func (s *artService) ListComments(ctx context.Context, actorID, artID int64) ([]model.ArtComment, error) {
	_, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.artCommentStore.ListByArt(ctx, artID)
}

func (s *artService) ListFeedback(ctx context.Context, actorID, artID int64) ([]model.ArtFeedback, error) {
	_, clientID, err := s.getArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.artFeedbackStore.ListByArt(ctx, artID)
}

func (s *artService) getArt(ctx context.Context, artID int64) (*model.Art, int64, error) {
	art, err := s.artStore.GetByID(ctx, artID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, 0, ErrArtNotFound
		}
		return nil, 0, fmt.Errorf("getting art: %w", err)
	}
	clientID, err := s.authorizer.ClientIDForTask(ctx, art.TaskID)
	if err != nil {
		return nil, 0, err
	}
	return art, clientID, nil
}

// workingPath is where uploads live before review.
func workingPath(artID int64, filename string) string {
	return fmt.Sprintf("art/%d_%s", artID, path.Base(filename))
}

// approvedPath is the reviewer-scoped location approved files move to.
func approvedPath(clientID, reviewerID int64, currentPath string) string {
	return fmt.Sprintf("%d/%d/approved/%s", clientID, reviewerID, path.Base(currentPath))
}
