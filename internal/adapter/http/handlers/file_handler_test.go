package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/adapter/http/handlers/mocks"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type formPart struct {
	name, filename, value string
}

func multipartRequest(t *testing.T, target string, parts ...formPart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		var (
			w   io.Writer
			err error
		)
		if p.filename != "" {
			w, err = mw.CreateFormFile(p.name, p.filename)
		} else {
			w, err = mw.CreateFormField(p.name)
		}
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := io.WriteString(w, p.value); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newFileRouter(h *FileHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/v1/deals/:id/files", h.ListFiles)
	r.POST("/v1/deals/:id/files", h.UploadFile)
	r.GET("/v1/deals/:id/files/pending", h.PendingUploads)
	r.GET("/v1/deals/:id/files/:file_id/content", h.DownloadFile)
	r.DELETE("/v1/deals/:id/files/:file_id", h.DeleteFile)
	r.PUT("/v1/deals/:id/files/:file_id/label", h.SetFileLabel)
	return r
}

func TestFileHandler_UploadFile(t *testing.T) {
	t.Run("streams the file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, nil)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Session, in usecase.UploadInput) (entities.DealFile, error) {
				body, err := io.ReadAll(in.Body)
				if err != nil {
					t.Fatalf("read body: %v", err)
				}
				if in.DealID != "d-1" || in.Name != "bl.pdf" || in.Label != "BL" || in.Size != 7 || string(body) != "%PDF-1." {
					t.Fatalf("unexpected input: %+v body=%q", in, body)
				}
				return entities.DealFile{ID: "f-1", DealID: "d-1", Name: in.Name, Label: in.Label, Size: 7}, nil
			})

		req := multipartRequest(t, "/v1/deals/d-1/files",
			formPart{name: "label", value: "BL"},
			formPart{name: "size", value: "7"},
			formPart{name: "file", filename: "bl.pdf", value: "%PDF-1."},
		)
		w := httptest.NewRecorder()
		newFileRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("label after the file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, nil)

		gomock.InOrder(
			uc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ entities.Session, in usecase.UploadInput) (entities.DealFile, error) {
					if in.Label != "" || in.Size != -1 {
						t.Fatalf("unexpected input: %+v", in)
					}
					_, _ = io.Copy(io.Discard, in.Body)
					return entities.DealFile{ID: "f-1", DealID: "d-1"}, nil
				}),
			uc.EXPECT().SetLabel(gomock.Any(), "d-1", "f-1", "Factura").Return(entities.DealFile{ID: "f-1", DealID: "d-1", Label: "Factura"}, nil),
		)

		req := multipartRequest(t, "/v1/deals/d-1/files",
			formPart{name: "file", filename: "inv.xlsx", value: "data"},
			formPart{name: "label", value: "Factura"},
		)
		w := httptest.NewRecorder()
		newFileRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var f entities.DealFile
		if err := json.Unmarshal(w.Body.Bytes(), &f); err != nil || f.Label != "Factura" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, nil)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.DealFile{}, usecase.ErrFileTooLarge)

		req := multipartRequest(t, "/v1/deals/d-1/files", formPart{name: "file", filename: "big.bin", value: "xx"})
		w := httptest.NewRecorder()
		newFileRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("no file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewFileHandler(mocks.NewMockIFileUseCase(ctrl), nil)

		req := multipartRequest(t, "/v1/deals/d-1/files", formPart{name: "label", value: "BL"})
		w := httptest.NewRecorder()
		newFileRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewFileHandler(mocks.NewMockIFileUseCase(ctrl), nil)

		w := serve(newFileRouter(h), http.MethodPost, "/v1/deals/d-1/files", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestFileHandler_PendingUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFileUseCase(ctrl)
	h := NewFileHandler(uc, nil)

	uc.EXPECT().Pending("d-1").Return([]entities.PendingUpload{
		{TempID: "tmp-1", Name: "a.pdf", BytesTotal: 200, BytesReceived: 50},
		{TempID: "tmp-2", Name: "b.pdf", BytesTotal: 0, BytesReceived: 10},
	})

	w := serve(newFileRouter(h), http.MethodGet, "/v1/deals/d-1/files/pending", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.PendingUploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Progress == nil || *got[0].Progress != 0.25 || got[1].Progress != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestFileHandler_DownloadFile(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, nil)

		uc.EXPECT().Open(gomock.Any(), "d-1", "f-1").Return(
			entities.DealFile{ID: "f-1", Name: "factura final.pdf", ContentType: "application/pdf", Size: 4},
			io.NopCloser(strings.NewReader("%PDF")),
			nil,
		)

		w := serve(newFileRouter(h), http.MethodGet, "/v1/deals/d-1/files/f-1/content", "")
		if w.Code != http.StatusOK || w.Body.String() != "%PDF" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="factura final.pdf"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc, nil)

		uc.EXPECT().Open(gomock.Any(), "d-1", "f-9").Return(entities.DealFile{}, nil, usecase.ErrFileNotFound)

		w := serve(newFileRouter(h), http.MethodGet, "/v1/deals/d-1/files/f-9/content", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestFileHandler_DeleteAndLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFileUseCase(ctrl)
	h := NewFileHandler(uc, nil)
	r := newFileRouter(h)

	uc.EXPECT().Delete(gomock.Any(), "d-1", "f-1").Return(nil)
	if w := serve(r, http.MethodDelete, "/v1/deals/d-1/files/f-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	uc.EXPECT().SetLabel(gomock.Any(), "d-1", "f-1", "").Return(entities.DealFile{}, usecase.ErrLabelsUnavailable)
	if w := serve(r, http.MethodPut, "/v1/deals/d-1/files/f-1/label", `{"label":""}`); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
