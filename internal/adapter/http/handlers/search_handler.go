package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const liveWriteTimeout = 5 * time.Second

type SearchHandler struct {
	usecase  usecase.ISearchUseCase
	debounce time.Duration
	logger   *zap.Logger
}

func NewSearchHandler(uc usecase.ISearchUseCase, debounce time.Duration, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{usecase: uc, debounce: debounce, logger: orNop(logger)}
}

// Search godoc
// @Summary      Search deals, organizations and contacts
// @Description  Queries shorter than 2 characters return empty categories. A failing category is returned empty.
// @Tags         search
// @Produce      json
// @Param        q    query     string  true  "Query"
// @Success      200  {object}  entities.SearchResults
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.usecase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Live godoc
// @Summary      Search as you type over a websocket
// @Description  Send {"query":"..."} messages. Only the latest query is answered, after the debounce window, as {"seq":n,"query":"...","results":{...}}.
// @Tags         search
// @Router       /search/live [get]
func (h *SearchHandler) Live(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("[search][handler] websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Holds at most the newest undelivered result.
	latest := make(chan usecase.LiveResult, 1)
	lookup := usecase.NewLiveLookup(h.usecase, h.debounce, func(r usecase.LiveResult) {
		for {
			select {
			case latest <- r:
				return
			default:
			}
			select {
			case <-latest:
			default:
			}
		}
	}, h.logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range latest {
			wctx, wcancel := context.WithTimeout(ctx, liveWriteTimeout)
			err := wsjson.Write(wctx, conn, r)
			wcancel()
			if err != nil {
				h.logger.Debug("[search][handler] live write failed", zap.Error(err))
				cancel()
				return
			}
		}
	}()

	for {
		var q request.LiveQuery
		if err := wsjson.Read(ctx, conn, &q); err != nil {
			if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				h.logger.Debug("[search][handler] live read ended", zap.Error(err))
			}
			break
		}
		lookup.Submit(ctx, q.Query)
	}

	lookup.Close()
	close(latest)
	<-done
	_ = conn.Close(websocket.StatusNormalClosure, "")
}
