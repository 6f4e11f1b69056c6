package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hondana/hondana/internal/database/books"
	"github.com/hondana/hondana/internal/session"
	"github.com/hondana/hondana/internal/themes"
)

// CatalogController serves the book listing, detail, and editing pages.
type CatalogController struct {
	books      BookStore
	categories CategoryStore
	resolver   *themes.Resolver
	sessions   *session.Manager
}

func NewCatalogController(b BookStore, cat CategoryStore, r *themes.Resolver, s *session.Manager) *CatalogController {
	return &CatalogController{
		books:      b,
		categories: cat,
		resolver:   r,
		sessions:   s,
	}
}

// render resolves the template for the requested view against the session's
// theme override and merges the shared template values into the data bag.
func (controller *CatalogController) render(c *gin.Context, view string, data gin.H) {
	override := controller.sessions.Theme(c.Request)

	data["AVAILABLE_TEMPLATES"] = controller.resolver.Modules()
	data["CurrentTheme"] = controller.currentTheme(override)
	data["csrf_token"] = c.GetString("csrf_token")

	c.HTML(http.StatusOK, controller.resolver.Resolve(view, override), data)
}

func (controller *CatalogController) currentTheme(override string) string {
	if override != "" {
		return override
	}
	return controller.resolver.Default()
}

// ListPage renders the full book table. No pagination.
func (controller *CatalogController) ListPage(c *gin.Context) {
	allBooks, err := controller.books.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	controller.render(c, ViewList, gin.H{
		"books": allBooks,
	})
}

// ViewPage renders a single book. An absent id is not an error: the view
// template receives a nil book.
func (controller *CatalogController) ViewPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := controller.books.Get(id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}

	controller.render(c, ViewView, gin.H{
		"book": book,
	})
}

// EditForm renders the form prefilled with the book matching id (nil when
// absent, same as the blank form).
func (controller *CatalogController) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := controller.books.Get(id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}

	cats, err := controller.categories.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading categories: %s", err.Error())
		return
	}

	controller.render(c, ViewForm, gin.H{
		"book":       book,
		"categories": cats,
	})
}

// EditSubmit replaces every mutable column of the book matching id, then
// redirects to the listing. A missing id is a silent no-op.
func (controller *CatalogController) EditSubmit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := controller.books.Update(id, fieldsFromForm(c)); err != nil {
		c.String(http.StatusInternalServerError, "Error updating book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// AddForm renders the blank form.
func (controller *CatalogController) AddForm(c *gin.Context) {
	cats, err := controller.categories.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading categories: %s", err.Error())
		return
	}

	controller.render(c, ViewForm, gin.H{
		"book":       nil,
		"categories": cats,
	})
}

// AddSubmit inserts a new book and redirects to the listing; the caller
// discovers the assigned id by re-listing.
func (controller *CatalogController) AddSubmit(c *gin.Context) {
	if err := controller.books.Insert(fieldsFromForm(c)); err != nil {
		c.String(http.StatusInternalServerError, "Error creating book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes the book matching id and redirects to the listing. A
// missing id is a silent no-op. This is a destructive GET, kept for
// compatibility with the exposed interface; see DESIGN.md.
func (controller *CatalogController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := controller.books.Delete(id); err != nil {
		c.String(http.StatusInternalServerError, "Error deleting book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// fieldsFromForm builds the explicit field bag from form data. An empty or
// unparseable category_id normalizes to "no category".
func fieldsFromForm(c *gin.Context) books.Fields {
	return books.Fields{
		Title:         c.PostForm("title"),
		Hepburn:       c.PostForm("hepburn"),
		Author:        c.PostForm("author"),
		PublishedDate: c.PostForm("published_date"),
		Release:       c.PostForm("release"),
		URL:           c.PostForm("url"),
		Summary:       c.PostForm("summary"),
		CategoryID:    books.NormalizeCategoryID(c.PostForm("category_id")),
	}
}
