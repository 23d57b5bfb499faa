package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/apperror"
	"github.com/maxviazov/pagination/pkg/pagination"
	"github.com/maxviazov/pagination/pkg/response"
)

type ItemHandler struct {
	svc     service.ItemService
	baseURL string
}

// NewItemHandler builds navigation links against baseURL; empty means ItemsPath.
func NewItemHandler(svc service.ItemService, baseURL string) *ItemHandler {
	if baseURL == "" {
		baseURL = ItemsPath
	}
	return &ItemHandler{svc: svc, baseURL: baseURL}
}

func (h *ItemHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/items")
	{
		g.POST("", h.create)
		g.GET("/:item_id", h.getByID)
		g.GET("", h.list)
	}
}

// Parse details of a bad body are not echoed back.
var errMalformedBody = apperror.ValidationField("body", "malformed JSON")

type createItemRequest struct {
	Name string `json:"name"`
}

func (h *ItemHandler) create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, errMalformedBody)
		return
	}
	it, err := h.svc.CreateItem(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, it)
}

func (h *ItemHandler) getByID(c *gin.Context) {
	it, err := h.svc.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, it)
}

// list godoc
// @Summary      List items
// @Description  List items with page/limit pagination
// @Tags         items
// @Param        page   query  int  false  "Page number (1-based)"  default(1)
// @Param        limit  query  int  false  "Page size (1..100)"     default(10)
// @Produce      json
// @Success      200  {object}  pagination.PaginatedResponse[model.Item]
// @Failure      400  {object}  response.ErrorPayload
// @Router       /items [get]
func (h *ItemHandler) list(c *gin.Context) {
	q := service.ListQuery{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}
	res, err := h.svc.ListItems(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if link := linkHeader(res.Pagination.Links(h.baseURL)); link != "" {
		c.Header("Link", link)
	}
	c.Header("X-Total-Count", strconv.FormatUint(res.Pagination.Total, 10))
	response.WriteData(c, http.StatusOK, res)
}

// queryInt returns nil for a missing or non-numeric parameter.
// Numbers outside int64 saturate so strict validation still sees them as out of range.
func queryInt(c *gin.Context, key string) *int64 {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil
	}
	return &v
}

// linkHeader renders RFC 8288 links, skipping the ones that don't apply.
func linkHeader(l pagination.Links) string {
	rels := []struct{ rel, url string }{
		{"first", l.First},
		{"prev", l.Prev},
		{"next", l.Next},
		{"last", l.Last},
	}
	parts := make([]string, 0, len(rels))
	for _, r := range rels {
		if r.url != "" {
			parts = append(parts, "<"+r.url+`>; rel="`+r.rel+`"`)
		}
	}
	return strings.Join(parts, ", ")
}
