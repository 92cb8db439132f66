package web

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
	"github.com/appetiteclub/canteen/pkg/view"
	"github.com/aquamarinepk/aqm"
	"github.com/aquamarinepk/aqm/telemetry"
	"github.com/go-chi/chi/v5"
)

// TemplateProvider hands out parsed page templates by file name.
type TemplateProvider interface {
	Get(name string) (*template.Template, error)
}

// Backend is the canteen API surface both pages need.
type Backend interface {
	view.StudentAPI
	view.KitchenAPI
}

type Handler struct {
	tmplMgr TemplateProvider
	api     Backend
	audit   *AuditLogger
	logger  aqm.Logger
	http    *telemetry.HTTP
}

// NewHandler binds both page layouts once so a layout that lost a region
// stops the service at startup instead of at first render.
func NewHandler(tmplMgr TemplateProvider, api Backend, audit *AuditLogger, logger aqm.Logger) (*Handler, error) {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	if audit == nil {
		audit = NewAuditLogger(logger, nil)
	}

	if _, err := view.NewStudentPage(view.StudentLayout(), api); err != nil {
		return nil, err
	}
	if _, err := view.NewKitchenPage(view.KitchenLayout(), api); err != nil {
		return nil, err
	}

	return &Handler{
		tmplMgr: tmplMgr,
		api:     api,
		audit:   audit,
		logger:  logger,
		http:    telemetry.NewHTTP(),
	}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.StudentHome)
	r.Post("/order", h.SubmitOrder)
	r.Get("/kitchen", h.Kitchen)
	r.Post("/kitchen/status", h.ChangeOrderStatus)
}

func (h *Handler) log(r *http.Request) aqm.Logger {
	return h.logger.With("request_id", aqm.RequestIDFrom(r.Context()))
}

// StudentHome renders the ordering page after its initial loads.
func (h *Handler) StudentHome(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.http.Start(w, r, "Handler.StudentHome")
	defer finish()

	page, err := view.NewStudentPage(view.StudentLayout(), h.api)
	if err != nil {
		h.log(r).Errorf("cannot build student page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.Load(r.Context())
	h.settle(r, page.Doc, "student page load")

	h.renderStudent(w, r, page)
}

// SubmitOrder applies the order form on top of a freshly loaded page.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.http.Start(w, r, "Handler.SubmitOrder")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	page, err := view.NewStudentPage(view.StudentLayout(), h.api)
	if err != nil {
		log.Errorf("cannot build student page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.Load(ctx)
	h.settle(r, page.Doc, "student page load")

	values := make(map[string]string, len(page.Form.Fields()))
	for _, name := range page.Form.Fields() {
		values[name] = r.PostForm.Get(name)
	}
	page.Form.Fill(values)
	req := page.Order.Request()

	result, err := page.Order.Submit(ctx)
	if err != nil {
		log.Info("order submission failed", "error", err)
	}
	h.audit.LogOrderSubmission(ctx, req, result, err)

	h.settle(r, page.Doc, "order refresh")
	h.renderStudent(w, r, page)
}

// Kitchen renders the kitchen page after loading active orders.
func (h *Handler) Kitchen(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.http.Start(w, r, "Handler.Kitchen")
	defer finish()

	page, err := view.NewKitchenPage(view.KitchenLayout(), h.api)
	if err != nil {
		h.log(r).Errorf("cannot build kitchen page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.Load(r.Context())
	h.settle(r, page.Doc, "kitchen page load")

	h.renderKitchen(w, r, page)
}

// ChangeOrderStatus delivers one selector change from the kitchen table.
func (h *Handler) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.http.Start(w, r, "Handler.ChangeOrderStatus")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("order_id")), 10, 64)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	value := r.PostForm.Get("status")
	status, err := orderstatus.Parse(value)
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	page, err := view.NewKitchenPage(view.KitchenLayout(), h.api)
	if err != nil {
		log.Errorf("cannot build kitchen page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.Load(ctx)
	h.settle(r, page.Doc, "kitchen page load")

	err = page.ChangeStatus(ctx, orderID, value)
	if err != nil {
		log.Info("status change failed", "order_id", orderID, "status", value, "error", err)
	}
	if !status.IsZero() {
		h.audit.LogStatusChange(ctx, orderID, status, err)
	}

	h.settle(r, page.Doc, "kitchen reload")
	h.renderKitchen(w, r, page)
}

// settle waits for scheduled view work. View errors are already reflected in
// the regions (or deliberately not), so they are only logged.
func (h *Handler) settle(r *http.Request, doc *view.Document, stage string) {
	if err := doc.Settle(); err != nil {
		h.log(r).Info("view reported error", "stage", stage, "error", err)
	}
}

func (h *Handler) renderStudent(w http.ResponseWriter, r *http.Request, page *view.StudentPage) {
	data := map[string]interface{}{
		"Title":        "Canteen",
		"Template":     "student",
		"MenuRows":     page.MenuBody.Rows(),
		"Form":         page.Form.Values(),
		"OrderMessage": page.OrderMessage.Text(),
		"QueueStatus":  page.QueuePanel.Lines(),
		"TodayStats":   page.StatsPanel.Lines(),
	}

	h.renderTemplate(w, r, "student.html", "base.html", data)
}

func (h *Handler) renderKitchen(w http.ResponseWriter, r *http.Request, page *view.KitchenPage) {
	data := map[string]interface{}{
		"Title":          "Kitchen Orders",
		"Template":       "kitchen",
		"OrderRows":      page.OrdersBody.Rows(),
		"KitchenMessage": page.Message.Text(),
	}

	h.renderTemplate(w, r, "kitchen.html", "base.html", data)
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, templateName, layout string, data map[string]interface{}) {
	tmpl, err := h.tmplMgr.Get(templateName)
	if err != nil {
		h.log(r).Error("error loading template", "error", err, "template", templateName)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, layout, data); err != nil {
		h.log(r).Error("error rendering template", "error", err, "layout", layout)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
