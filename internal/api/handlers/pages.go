package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/constants"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/notify"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/site"
	"github.com/webcraftstudio/webcraft/internal/utils"
)

// ThankYouText is the confirmation card shown after a successful send
const ThankYouText = "Your message has been sent successfully. We'll get back to you within 24 hours."

// formFields are read from a contact post in this order
var formFields = []contact.Field{
	contact.FieldName,
	contact.FieldEmail,
	contact.FieldCompany,
	contact.FieldBusiness,
	contact.FieldBudget,
	contact.FieldMessage,
}

// PageData is handed to every page template
type PageData struct {
	Site      *site.Content
	Title     string
	Message   string
	Path      string
	Nav       site.NavState
	Year      int
	CSRFToken string

	FAQ       site.Accordion
	Portfolio *site.PortfolioView
	Selected  *site.Project
	Contact   *ContactView
}

// ContactView is the contact card: either the form or the thank-you state
type ContactView struct {
	Form             contact.FormState
	Budgets          []contact.Budget
	RequiresBusiness bool
	Submitted        bool
	SuccessText      string
	Notice           *notify.Notification
}

// PagesHandler renders the marketing pages
type PagesHandler struct {
	content *site.Content
	leads   *service.LeadService
	variant contact.Variant
}

// NewPagesHandler creates the page handler. Contact posts are delivered to leads.
func NewPagesHandler(content *site.Content, leads *service.LeadService) *PagesHandler {
	return &PagesHandler{
		content: content,
		leads:   leads,
		variant: leads.Variant(),
	}
}

func (h *PagesHandler) page(c *gin.Context, title string) PageData {
	var nav site.NavState
	if c.Query("menu") == "open" {
		nav.Toggle()
	}
	return PageData{
		Site:      h.content,
		Title:     title,
		Path:      c.Request.URL.Path,
		Nav:       nav,
		Year:      site.Year(),
		CSRFToken: c.GetString(constants.ContextKeyCSRFToken),
		FAQ:       site.NewAccordion(),
	}
}

// Home renders the landing page
func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.page(c, ""))
}

// About renders the about page
func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.page(c, "About"))
}

// Services renders the services page. ?faq=N expands one question.
func (h *PagesHandler) Services(c *gin.Context) {
	data := h.page(c, "Services")
	data.FAQ = site.ParseAccordion(c.Query("faq"), len(h.content.FAQs))
	c.HTML(http.StatusOK, "services.html", data)
}

// Portfolio renders the project grid. ?category=X filters it and
// ?project=ID opens a case study.
func (h *PagesHandler) Portfolio(c *gin.Context) {
	data := h.page(c, "Portfolio")

	view := site.NewPortfolioView(h.content)
	view.Filter(c.DefaultQuery("category", site.CategoryAll))
	if id, err := strconv.Atoi(c.Query("project")); err == nil && view.Select(id) {
		p, _ := view.Selected()
		data.Selected = &p
	}
	data.Portfolio = view

	c.HTML(http.StatusOK, "portfolio.html", data)
}

func (h *PagesHandler) contactView(form contact.FormState) *ContactView {
	return &ContactView{
		Form:             form,
		Budgets:          contact.BudgetRanges(),
		RequiresBusiness: h.variant.RequiresBusiness(),
		SuccessText:      ThankYouText,
	}
}

// Contact renders the contact form, or the thank-you card after ?sent=1
func (h *PagesHandler) Contact(c *gin.Context) {
	data := h.page(c, "Contact")
	data.Contact = h.contactView(contact.FormState{})

	if c.Query("sent") == "1" {
		data.Contact.Submitted = true
		data.Contact.Notice = &notify.Notification{
			Kind:  notify.KindSuccess,
			Title: h.variant.SuccessTitle(),
			Text:  h.variant.SuccessText(),
		}
	}

	c.HTML(http.StatusOK, "contact.html", data)
}

// SubmitContact drives a contact controller with the posted fields. Success
// redirects to the thank-you card; anything else re-renders the form with
// the values kept and the error notification shown.
func (h *PagesHandler) SubmitContact(c *gin.Context) {
	notices := &notify.Recorder{}
	ctrl := contact.NewController(h.variant, service.LeadSubmitter{
		Service: h.leads,
		Info: service.SubmissionInfo{
			IPAddress: utils.GetRealIP(c),
			UserAgent: c.Request.UserAgent(),
			Referrer:  c.Request.Referer(),
		},
	}, notices)

	for _, f := range formFields {
		if v, ok := c.GetPostForm(string(f)); ok {
			ctrl.OnFieldChange(f, v)
		}
	}

	result, err := ctrl.Submit(c.Request.Context())
	if err == nil && result.Outcome == contact.OutcomeDelivered {
		c.Redirect(http.StatusSeeOther, "/contact?sent=1")
		return
	}

	// The controller is fresh per request, so Start can only refuse the form
	// with a validation error; rejection keeps 422 as well.
	status := http.StatusUnprocessableEntity
	if err == nil && result.Outcome == contact.OutcomeFailed {
		status = http.StatusInternalServerError
		logging.GetLogger().Error("Contact submission failed: %v", result.Err)
	}

	data := h.page(c, "Contact")
	data.Contact = h.contactView(ctrl.Snapshot())
	if n, ok := notices.Last(); ok {
		data.Contact.Notice = &n
	}
	c.HTML(status, "contact.html", data)
}

// NotFound renders the 404 page
func (h *PagesHandler) NotFound(c *gin.Context) {
	data := h.page(c, "Page Not Found")
	data.Message = "The page you are looking for does not exist."
	c.HTML(http.StatusNotFound, "error.html", data)
}
