package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated  = errors.New("session required")
	ErrInvalidNoteBody  = errors.New("invalid note body")
	ErrInvalidFileID    = errors.New("invalid file id")
	ErrAttachmentDenied = errors.New("attachment does not belong to deal")
)

// INoteUseCase records deal activity. The author always comes from the
// session passed in; nothing is read from ambient state.
type INoteUseCase interface {
	Create(ctx context.Context, session entities.Session, dealID, body string, attachments []string) (entities.Note, error)
	List(ctx context.Context, dealID string) ([]entities.Note, error)
}

type NoteUseCase struct {
	repo         interfaces.INoteRepository
	dealRepo     interfaces.IDealRepository
	fileRepo     interfaces.IDealFileRepository
	customFields ICustomFieldUseCase
	logger       *zap.Logger
}

var _ INoteUseCase = (*NoteUseCase)(nil)

func NewNoteUseCase(repo interfaces.INoteRepository, dealRepo interfaces.IDealRepository, fileRepo interfaces.IDealFileRepository, customFields ICustomFieldUseCase, logger *zap.Logger) *NoteUseCase {
	return &NoteUseCase{repo: repo, dealRepo: dealRepo, fileRepo: fileRepo, customFields: customFields, logger: orNop(logger)}
}

func (u *NoteUseCase) Create(ctx context.Context, session entities.Session, dealID, body string, attachments []string) (entities.Note, error) {
	if !session.Valid() {
		return entities.Note{}, ErrUnauthenticated
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return entities.Note{}, ErrInvalidNoteBody
	}
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return entities.Note{}, err
	}

	attachments = lo.Uniq(lo.Compact(lo.Map(attachments, func(s string, _ int) string { return strings.TrimSpace(s) })))
	for _, fileID := range attachments {
		f, err := u.fileRepo.GetByID(ctx, fileID)
		if err != nil {
			return entities.Note{}, err
		}
		if f.ID == "" || f.DealID != d.ID {
			return entities.Note{}, ErrAttachmentDenied
		}
	}

	n, err := u.repo.Create(ctx, entities.Note{
		ID:         uuid.NewString(),
		DealID:     d.ID,
		AuthorID:   session.UserID,
		AuthorName: session.UserName,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		u.logger.Error("[note][usecase] create failed", zap.String("deal_id", d.ID), zap.Error(err))
		return entities.Note{}, err
	}

	if len(attachments) > 0 {
		if err := u.attach(ctx, d.ID, entities.NoteAttachment{NoteID: n.ID, FileIDs: attachments}); err != nil {
			u.logger.Warn("[note][usecase] attachment association failed",
				zap.String("deal_id", d.ID), zap.String("note_id", n.ID), zap.Error(err))
		} else {
			n.Attachments = attachments
		}
	}

	u.logger.Info("[note][usecase] created",
		zap.String("deal_id", d.ID),
		zap.String("note_id", n.ID),
		zap.String("author_id", session.UserID),
		zap.Int("attachments", len(n.Attachments)))
	return n, nil
}

// List returns the deal's notes newest first, with attachments resolved from
// the deal overlay.
func (u *NoteUseCase) List(ctx context.Context, dealID string) ([]entities.Note, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return nil, err
	}
	notes, err := u.repo.ListByDealID(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	set := u.customFields.GetAll(ctx, entities.EntityDeal, d.ID)
	links := structuredList[entities.NoteAttachment](set, entities.CFKeyNoteAttachments, u.logger)
	byNote := lo.SliceToMap(links, func(a entities.NoteAttachment) (string, []string) { return a.NoteID, a.FileIDs })
	for i := range notes {
		if ids, ok := byNote[notes[i].ID]; ok {
			notes[i].Attachments = ids
		}
	}

	slices.SortStableFunc(notes, func(a, b entities.Note) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return notes, nil
}

func (u *NoteUseCase) attach(ctx context.Context, dealID string, link entities.NoteAttachment) error {
	set := u.customFields.GetAll(ctx, entities.EntityDeal, dealID)
	if !set.Supported {
		return errors.New("custom fields unavailable")
	}
	links := structuredList[entities.NoteAttachment](set, entities.CFKeyNoteAttachments, u.logger)
	links = append(lo.Reject(links, func(a entities.NoteAttachment, _ int) bool { return a.NoteID == link.NoteID }), link)

	value, err := entities.NewStructuredValue(links)
	if err != nil {
		return err
	}
	_, err = u.customFields.Upsert(ctx, entities.EntityDeal, dealID, entities.CustomFieldInput{
		Key:   entities.CFKeyNoteAttachments,
		Label: "Note attachments",
		Type:  entities.FieldTypeJSON,
		Value: value,
	})
	return err
}

// structuredList decodes a list payload stored under key. Missing or
// malformed payloads read as empty.
func structuredList[T any](set entities.CustomFieldSet, key string, logger *zap.Logger) []T {
	f, ok := set.Fields[key]
	if !ok || f.Value.Text() == "" {
		return nil
	}
	value := f.Value
	if !value.IsStructured() {
		// Older rows stored the JSON as plain text.
		raw, err := entities.RawJSONValue([]byte(value.Text()))
		if err != nil {
			logger.Warn("[cf][usecase] ignoring malformed structured field", zap.String("key", key), zap.Error(err))
			return nil
		}
		value = raw
	}
	var out []T
	if err := entities.DecodeStructured(value, &out); err != nil {
		logger.Warn("[cf][usecase] ignoring malformed structured field", zap.String("key", key), zap.Error(err))
		return nil
	}
	return out
}

func requireDeal(ctx context.Context, repo interfaces.IDealRepository, dealID string) (entities.Deal, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	d, err := repo.GetByID(ctx, dealID)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}
