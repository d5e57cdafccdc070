package handler

import (
	"Lumen/internal/pkg/response"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
}

func NewSuggestionHandler(suggestionSvc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionSvc: suggestionSvc,
	}
}

// GetSuggestedUsers 关注推荐
func (s *SuggestionHandler) GetSuggestedUsers(c *gin.Context) {
	userID := c.GetUint64("user_id")

	list, err := s.suggestionSvc.GetSuggestedUsers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
