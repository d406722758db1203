package handler

import (
	"net/http"
	"strconv"
	"time"

	paginate "github.com/casao/gin-paginate"
	"github.com/casao/gin-paginate/internal/repository"
	"github.com/casao/gin-paginate/internal/service"
	"github.com/casao/gin-paginate/pkg/response"
	"github.com/gin-gonic/gin"
)

// listOptions configures the paginated listing: this is a plain HTTP API, so
// range information may arrive via headers or query parameters and the AJAX
// gate is off.
var listOptions = paginate.Options{
	Mode:             paginate.ModeBoth,
	DisableAJAXCheck: true,
}

type ArticleHandler struct {
	svc service.ArticleService
}

func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

func (h *ArticleHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/articles")
	{
		g.POST("", h.create)
		g.GET("/:article_id", h.getByID)
		g.GET("", paginate.WrapWith(listOptions, h.list))
	}
}

type createArticleRequest struct {
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

func (h *ArticleHandler) create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parsing details stay internal
		return
	}
	article, err := h.svc.CreateArticle(c.Request.Context(), req.Title, req.Author, req.PublishedAt)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, article)
}

func (h *ArticleHandler) getByID(c *gin.Context) {
	idStr := c.Param("article_id")
	id, _ := strconv.ParseInt(idStr, 10, 64)
	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, article)
}

// list serves both shapes: without range information it returns the whole
// default window as a JSON envelope; with it, just the items array while the
// wrapper reports window and total through the 206 headers.
func (h *ArticleHandler) list(c *gin.Context) any {
	p, ok := paginate.FromContext(c)
	if !ok {
		res, err := h.svc.ListArticles(c.Request.Context(), repository.Page{})
		if err != nil {
			return response.ErrorBody(c, err)
		}
		return res
	}

	page, err := service.PageFromRange(p.Range)
	if err != nil {
		return response.ErrorBody(c, err)
	}
	res, err := h.svc.ListArticles(c.Request.Context(), page)
	if err != nil {
		return response.ErrorBody(c, err)
	}

	p.SetTotal(res.Total)
	if n := len(res.Items); n > 0 && n < page.Limit {
		// Short page: advertise the window actually returned.
		p.SetReturnRange(paginate.RangeOf(page.Offset, page.Offset+n-1))
	}
	return res.Items
}
