package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrEmptyFile         = errors.New("empty file body")
	ErrInvalidFileName   = errors.New("invalid file name")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidFileLabel  = errors.New("invalid file label")
	ErrLabelsUnavailable = errors.New("file labels unavailable")
)

// UploadInput is one file being received. Size is the declared length, or
// -1 when unknown.
type UploadInput struct {
	DealID      string
	Name        string
	ContentType string
	Size        int64
	Label       string
	Body        io.Reader
}

type IFileUseCase interface {
	List(ctx context.Context, dealID string) ([]entities.DealFile, error)
	Upload(ctx context.Context, session entities.Session, in UploadInput) (entities.DealFile, error)
	Pending(dealID string) []entities.PendingUpload
	Open(ctx context.Context, dealID, fileID string) (entities.DealFile, io.ReadCloser, error)
	Delete(ctx context.Context, dealID, fileID string) error
	SetLabel(ctx context.Context, dealID, fileID, label string) (entities.DealFile, error)
}

type FileUseCase struct {
	repo         interfaces.IDealFileRepository
	dealRepo     interfaces.IDealRepository
	blobs        interfaces.IBlobStore
	customFields ICustomFieldUseCase
	maxSize      int64
	pending      *pendingUploads
	logger       *zap.Logger
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(repo interfaces.IDealFileRepository, dealRepo interfaces.IDealRepository, blobs interfaces.IBlobStore, customFields ICustomFieldUseCase, maxSize int64, logger *zap.Logger) *FileUseCase {
	return &FileUseCase{
		repo:         repo,
		dealRepo:     dealRepo,
		blobs:        blobs,
		customFields: customFields,
		maxSize:      maxSize,
		pending:      newPendingUploads(),
		logger:       orNop(logger),
	}
}

// List returns the deal's files newest first, labels taken from the overlay.
func (u *FileUseCase) List(ctx context.Context, dealID string) ([]entities.DealFile, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return nil, err
	}
	files, err := u.repo.ListByDealID(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	labels := u.labels(ctx, d.ID)
	for i := range files {
		if l, ok := labels[files[i].ID]; ok {
			files[i].Label = l
		}
	}
	slices.SortStableFunc(files, func(a, b entities.DealFile) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return files, nil
}

// Upload streams the body into the blob store. While it runs the upload is
// visible through Pending under a temporary id; the entry is dropped on
// completion or failure.
func (u *FileUseCase) Upload(ctx context.Context, session entities.Session, in UploadInput) (entities.DealFile, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(in.Name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return entities.DealFile{}, ErrInvalidFileName
	}
	if in.Body == nil {
		return entities.DealFile{}, ErrEmptyFile
	}
	if u.maxSize > 0 && in.Size > u.maxSize {
		return entities.DealFile{}, ErrFileTooLarge
	}
	d, err := requireDeal(ctx, u.dealRepo, in.DealID)
	if err != nil {
		return entities.DealFile{}, err
	}

	entry := u.pending.add(d.ID, name, in.Size)
	defer u.pending.remove(entry.tempID)
	log := u.logger.With(zap.String("deal_id", d.ID), zap.String("temp_id", entry.tempID), zap.String("name", name))

	id := uuid.NewString()
	key := d.ID + "/" + id
	body := io.Reader(&countingReader{r: in.Body, n: &entry.received})
	if u.maxSize > 0 {
		body = io.LimitReader(body, u.maxSize+1)
	}

	written, err := u.blobs.Put(ctx, key, body)
	if err != nil {
		log.Warn("[file][usecase] upload failed", zap.Error(err))
		_ = u.blobs.Delete(context.WithoutCancel(ctx), key)
		return entities.DealFile{}, fmt.Errorf("store file: %w", err)
	}
	if u.maxSize > 0 && written > u.maxSize {
		_ = u.blobs.Delete(context.WithoutCancel(ctx), key)
		return entities.DealFile{}, ErrFileTooLarge
	}

	f, err := u.repo.Create(ctx, entities.DealFile{
		ID:          id,
		DealID:      d.ID,
		Name:        name,
		ContentType: lo.Ternary(in.ContentType == "", "application/octet-stream", in.ContentType),
		Size:        written,
		StorageKey:  key,
		UploadedBy:  session.UserID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Warn("[file][usecase] metadata create failed", zap.Error(err))
		_ = u.blobs.Delete(context.WithoutCancel(ctx), key)
		return entities.DealFile{}, err
	}
	log.Info("[file][usecase] uploaded", zap.String("file_id", f.ID), zap.Int64("size", written))

	if label := strings.TrimSpace(in.Label); label != "" {
		labeled, err := u.SetLabel(ctx, d.ID, f.ID, label)
		if err != nil {
			log.Warn("[file][usecase] label not stored", zap.String("file_id", f.ID), zap.Error(err))
		} else {
			f = labeled
		}
	}
	return f, nil
}

func (u *FileUseCase) Pending(dealID string) []entities.PendingUpload {
	return u.pending.snapshot(strings.TrimSpace(dealID))
}

func (u *FileUseCase) Open(ctx context.Context, dealID, fileID string) (entities.DealFile, io.ReadCloser, error) {
	f, err := u.owned(ctx, dealID, fileID)
	if err != nil {
		return entities.DealFile{}, nil, err
	}
	rc, err := u.blobs.Open(ctx, f.StorageKey)
	if err != nil {
		return entities.DealFile{}, nil, err
	}
	return f, rc, nil
}

func (u *FileUseCase) Delete(ctx context.Context, dealID, fileID string) error {
	f, err := u.owned(ctx, dealID, fileID)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, f.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFileNotFound
	}
	if err := u.blobs.Delete(ctx, f.StorageKey); err != nil {
		u.logger.Warn("[file][usecase] blob delete failed", zap.String("file_id", f.ID), zap.Error(err))
	}
	if err := u.writeLabel(ctx, f.DealID, f.ID, ""); err != nil {
		u.logger.Warn("[file][usecase] label cleanup failed", zap.String("file_id", f.ID), zap.Error(err))
	}
	return nil
}

// SetLabel stores the file's label in the deal overlay. An empty label
// removes it.
func (u *FileUseCase) SetLabel(ctx context.Context, dealID, fileID, label string) (entities.DealFile, error) {
	f, err := u.owned(ctx, dealID, fileID)
	if err != nil {
		return entities.DealFile{}, err
	}
	label = strings.TrimSpace(label)
	if len(label) > 120 {
		return entities.DealFile{}, ErrInvalidFileLabel
	}
	if err := u.writeLabel(ctx, f.DealID, f.ID, label); err != nil {
		return entities.DealFile{}, err
	}
	f.Label = label
	return f, nil
}

func (u *FileUseCase) writeLabel(ctx context.Context, dealID, fileID, label string) error {
	set := u.customFields.GetAll(ctx, entities.EntityDeal, dealID)
	if !set.Supported {
		return ErrLabelsUnavailable
	}
	current := structuredList[entities.FileLabel](set, entities.CFKeyFileLabels, u.logger)
	next := lo.Reject(current, func(l entities.FileLabel, _ int) bool { return l.FileID == fileID })
	if label != "" {
		next = append(next, entities.FileLabel{FileID: fileID, Label: label})
	}
	if len(next) == len(current) && label == "" {
		return nil
	}

	value, err := entities.NewStructuredValue(next)
	if err != nil {
		return err
	}
	_, err = u.customFields.Upsert(ctx, entities.EntityDeal, dealID, entities.CustomFieldInput{
		Key:   entities.CFKeyFileLabels,
		Label: "File labels",
		Type:  entities.FieldTypeJSON,
		Value: value,
	})
	return err
}

func (u *FileUseCase) labels(ctx context.Context, dealID string) map[string]string {
	set := u.customFields.GetAll(ctx, entities.EntityDeal, dealID)
	list := structuredList[entities.FileLabel](set, entities.CFKeyFileLabels, u.logger)
	return lo.SliceToMap(list, func(l entities.FileLabel) (string, string) { return l.FileID, l.Label })
}

func (u *FileUseCase) owned(ctx context.Context, dealID, fileID string) (entities.DealFile, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return entities.DealFile{}, ErrInvalidFileID
	}
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return entities.DealFile{}, err
	}
	f, err := u.repo.GetByID(ctx, fileID)
	if err != nil {
		return entities.DealFile{}, err
	}
	if f.ID == "" || f.DealID != d.ID {
		return entities.DealFile{}, ErrFileNotFound
	}
	return f, nil
}

type pendingEntry struct {
	tempID    string
	dealID    string
	name      string
	total     int64
	received  atomic.Int64
	startedAt time.Time
}

// pendingUploads tracks in-flight uploads. Entries are independent; each
// upload only touches its own counter.
type pendingUploads struct {
	mu      sync.RWMutex
	entries map[string]*pendingEntry
}

func newPendingUploads() *pendingUploads {
	return &pendingUploads{entries: map[string]*pendingEntry{}}
}

func (p *pendingUploads) add(dealID, name string, total int64) *pendingEntry {
	e := &pendingEntry{
		tempID:    xid.New().String(),
		dealID:    dealID,
		name:      name,
		total:     total,
		startedAt: time.Now().UTC(),
	}
	p.mu.Lock()
	p.entries[e.tempID] = e
	p.mu.Unlock()
	return e
}

func (p *pendingUploads) remove(tempID string) {
	p.mu.Lock()
	delete(p.entries, tempID)
	p.mu.Unlock()
}

func (p *pendingUploads) snapshot(dealID string) []entities.PendingUpload {
	p.mu.RLock()
	out := make([]entities.PendingUpload, 0, len(p.entries))
	for _, e := range p.entries {
		if dealID != "" && e.dealID != dealID {
			continue
		}
		out = append(out, entities.PendingUpload{
			TempID:        e.tempID,
			DealID:        e.dealID,
			Name:          e.name,
			BytesTotal:    e.total,
			BytesReceived: e.received.Load(),
			StartedAt:     e.startedAt,
		})
	}
	p.mu.RUnlock()

	slices.SortFunc(out, func(a, b entities.PendingUpload) int { return a.StartedAt.Compare(b.StartedAt) })
	return out
}

type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}
