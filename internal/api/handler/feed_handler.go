package handler

import (
	"Lumen/internal/api/config"
	"Lumen/internal/api/dto"
	"Lumen/internal/pkg/response"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

// GetFeed 关注流，按个性化分值降序
func (s *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if query.Limit == 0 {
		query.Limit = config.Cfg.Feed.DefaultPageSize
	}

	page, err := s.feedSvc.GetFeed(c.Request.Context(), userID, service.ModeFollowedFeed, query.Limit, query.Offset, nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GetExplore 发现页，公开的未关注内容
func (s *FeedHandler) GetExplore(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if query.Limit == 0 {
		query.Limit = config.Cfg.Feed.ExplorePageSize
	}

	page, err := s.feedSvc.GetFeed(c.Request.Context(), userID, service.ModeDiscovery, query.Limit, query.Offset, nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
