package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/helpershop/helpershop/internal/catalog"
	"github.com/helpershop/helpershop/internal/ids"
	"github.com/helpershop/helpershop/internal/money"
	"github.com/helpershop/helpershop/internal/orders"
	"github.com/helpershop/helpershop/internal/picker"
)

// API adapts HTTP requests into synchronous calls on the catalog, the
// draft being composed and the order log. It owns one draft session per
// open composition view.
type API struct {
	Catalog *catalog.Store
	Log     *orders.Log
	IDs     ids.Generator
	Picker  picker.Picker
	Logger  zerolog.Logger

	mu     sync.Mutex
	drafts map[string]*orders.Draft
}

func (a *API) Register(r *chi.Mux) {
	a.drafts = make(map[string]*orders.Draft)

	r.Get("/healthz", a.healthz)

	r.Post("/products", a.createProduct)
	r.Get("/products", a.listProducts)
	r.Get("/payment-methods", a.listPaymentMethods)

	r.Post("/drafts", a.openDraft)
	r.Get("/drafts/{id}", a.getDraft)
	r.Delete("/drafts/{id}", a.cancelDraft)
	r.Post("/drafts/{id}/items", a.addDraftItem)
	r.Delete("/drafts/{id}/items/{itemID}", a.removeDraftItem)
	r.Post("/drafts/{id}/finalize", a.finalizeDraft)

	r.Get("/orders", a.listOrders)
}

func (a *API) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// ---- products ----

type createProductReq struct {
	catalog.Intake
	// Source drives the image picker when no image_uri is supplied.
	Source picker.Source `json:"source,omitempty"`
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid json"))
		return
	}

	if req.ImageURI == "" && req.Source != "" {
		res, err := a.Picker.Launch(r.Context(), req.Source, picker.Options{MediaType: "photo", Quality: 1})
		if err != nil {
			a.Logger.Warn().Err(err).Str("source", string(req.Source)).Msg("image picker failed")
		} else if res.ErrorMessage != "" {
			a.Logger.Warn().Str("source", string(req.Source)).Str("reason", res.ErrorMessage).Msg("image picker error")
		} else if res.Canceled {
			a.Logger.Info().Str("source", string(req.Source)).Msg("image selection canceled")
		}
		if uri, ok := picker.Resolve(res); ok {
			req.ImageURI = uri
		}
	}

	name, price, qty, err := req.Intake.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p := a.Catalog.Add(name, price, qty, req.ImageURI)
	writeJSON(w, http.StatusCreated, p)
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Catalog.List())
}

func (a *API) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orders.PaymentMethods())
}

// ---- drafts ----

type draftView struct {
	ID     string            `json:"id"`
	Status orders.Status     `json:"status"`
	Items  []orders.LineItem `json:"items"`
	Total  money.Cents       `json:"total_cents"`
	// two-decimal display form; internal totals stay exact cents
	TotalDisplay string `json:"total"`
}

func (a *API) viewOf(id string, d *orders.Draft) draftView {
	return draftView{
		ID:           id,
		Status:       d.Status(),
		Items:        d.Items(),
		Total:        d.Total(),
		TotalDisplay: d.Total().String(),
	}
}

func (a *API) openDraft(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.IDs.NewID()
	d := orders.NewDraft(a.Catalog, a.IDs, a.Log)
	a.drafts[id] = d
	writeJSON(w, http.StatusCreated, a.viewOf(id, d))
}

func (a *API) draftFor(r *http.Request) (string, *orders.Draft, bool) {
	id := chi.URLParam(r, "id")
	d, ok := a.drafts[id]
	return id, d, ok
}

func (a *API) getDraft(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, d, ok := a.draftFor(r)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	writeJSON(w, http.StatusOK, a.viewOf(id, d))
}

type addItemReq struct {
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
}

func (a *API) addDraftItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid json"))
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id, d, ok := a.draftFor(r)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	item, err := d.AddLineItem(req.ProductName, req.Quantity)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"item":  item,
		"draft": a.viewOf(id, d),
	})
}

func (a *API) removeDraftItem(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, d, ok := a.draftFor(r)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	// unknown item ids are a deliberate no-op
	d.RemoveLineItem(chi.URLParam(r, "itemID"))
	w.WriteHeader(http.StatusNoContent)
}

type finalizeReq struct {
	SellerName    string `json:"seller_name"`
	CustomerName  string `json:"customer_name"`
	PaymentMethod string `json:"payment_method"`
}

func (a *API) finalizeDraft(w http.ResponseWriter, r *http.Request) {
	var req finalizeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid json"))
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id, d, ok := a.draftFor(r)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	order, err := d.Finalize(req.SellerName, req.CustomerName, req.PaymentMethod)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	// finalize closes the composition view
	delete(a.drafts, id)
	a.Logger.Info().Str("order_id", order.ID).Str("total", order.TotalCents.String()).Msg("order created")
	writeJSON(w, http.StatusCreated, order)
}

func (a *API) cancelDraft(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, d, ok := a.draftFor(r)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	_ = d.Cancel()
	delete(a.drafts, id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- orders ----

func (a *API) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Log.Snapshot())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, orders.ErrDraftClosed):
		return http.StatusConflict
	case errors.Is(err, orders.ErrProductNotFound),
		errors.Is(err, orders.ErrInvalidQuantity),
		errors.Is(err, orders.ErrDraftIncomplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
