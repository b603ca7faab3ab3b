package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type fundSearchResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Pinyin string `json:"pinyin"`
}

func (m ApiHandler) fundSearch(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		returnErrorJsonCode(fmt.Errorf("missing query parameter q"), c, 400)
		return
	}

	funds, err := m.FundCatalogRepository.Search(keyword, 10)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []fundSearchResponse{}
	for _, f := range funds {
		out = append(out, fundSearchResponse{
			Code:   f.Code,
			Name:   f.Name,
			Type:   f.Type,
			Pinyin: f.Pinyin,
		})
	}

	c.JSON(200, gin.H{
		"success": true,
		"funds":   out,
	})
}
