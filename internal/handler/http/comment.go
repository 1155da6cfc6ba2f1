package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/utils"
	"github.com/MoodyMakai/WebDevForum/models"
)

type postCommentRequest struct {
	Content string `json:"content"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.PostComment(ctx, accountID, request.Content)
	if err != nil {
		log.Err(err).Msg("comment posting failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := feedFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid feed query parameters")
		http.Error(w, "invalid feed query parameters", http.StatusBadRequest)
		return
	}

	comments, err := h.services.CommentService.ListFeed(ctx, filter)
	if err != nil {
		log.Err(err).Msg("feed listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// liveFeed upgrades the request to a websocket and subscribes it to the
// comment hub. The connection stays open until the client disconnects or
// falls too far behind.
func (h *Handler) liveFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Register(feed.NewClient(accountID, conn))
	log.Debug().Int64("id", accountID).Msg("live feed subscriber connected")
}

// feedFilterFromQuery parses the optional "author", "limit", and "offset"
// query parameters.
func feedFilterFromQuery(r *http.Request) (models.FeedFilter, error) {
	var filter models.FeedFilter

	query := r.URL.Query()
	if author := query.Get("author"); author != "" {
		accountID, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			return models.FeedFilter{}, err
		}
		filter.AccountID = accountID
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return models.FeedFilter{}, err
		}
		filter.Limit = parsed
	}
	if offset := query.Get("offset"); offset != "" {
		parsed, err := strconv.ParseUint(offset, 10, 64)
		if err != nil {
			return models.FeedFilter{}, err
		}
		filter.Offset = parsed
	}

	return filter, nil
}
