package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/application/service"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/observability"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type OrderService interface {
	GetByIDWithStats(ctx context.Context, id string) (*domain.Order, service.LookupStats, error)
	UpdateDeliveryStatus(ctx context.Context, id, status string) error
}

type PlatformStore interface {
	List(ctx context.Context) ([]domain.Platform, error)
	Upsert(ctx context.Context, p *domain.Platform) error
}

type ServiceState interface {
	IsServiceActive(ctx context.Context) (bool, error)
	SetServiceActive(ctx context.Context, active bool) error
}

type Server struct {
	orders    OrderService
	platforms PlatformStore
	state     ServiceState
	mux       *http.ServeMux
	logger    *zap.Logger
	metrics   observability.Metrics
}

func New(orders OrderService, platforms PlatformStore, state ServiceState, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		orders:    orders,
		platforms: platforms,
		state:     state,
		mux:       http.NewServeMux(),
		logger:    logger,
		metrics:   metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /order/", s.getOrder)
	s.mux.HandleFunc("PATCH /order/{id}/status", s.updateStatus)
	s.mux.HandleFunc("GET /platforms", s.listPlatforms)
	s.mux.HandleFunc("PUT /platform/", s.upsertPlatform)
	s.mux.HandleFunc("GET /service", s.getService)
	s.mux.HandleFunc("PUT /service", s.setService)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/order/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "order id required", http.StatusBadRequest)
		return
	}

	order, st, err := s.orders.GetByIDWithStats(r.Context(), id)
	if err != nil {
		http.Error(w, "no order with this id", http.StatusNotFound)
		return
	}

	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "db", st.DBMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)
	observability.SetIfPos(w, "X-DB-Time", st.DBMs)

	writeJSON(w, order)
}

var validStatuses = map[string]bool{
	domain.StatusPending:   true,
	domain.StatusAccepted:  true,
	domain.StatusRejected:  true,
	domain.StatusPickedUp:  true,
	domain.StatusDelivered: true,
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if !validStatuses[body.Status] {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	if err := s.orders.UpdateDeliveryStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "no order with this id", http.StatusNotFound)
			return
		}
		http.Error(w, "Service error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"order_id": id, "status": body.Status})
}

func (s *Server) listPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := s.platforms.List(r.Context())
	if err != nil {
		http.Error(w, "Service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, platforms)
}

func (s *Server) upsertPlatform(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/platform/")
	if name == "" {
		http.Error(w, "platform name required", http.StatusBadRequest)
		return
	}

	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var p domain.Platform
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&p); err != nil {
		s.logger.Error(
			"Error while decoding JSON",
			zap.Error(err),
		)
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	p.Name = name
	if err := validatePlatform(p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.platforms.Upsert(r.Context(), &p); err != nil {
		http.Error(w, "Service error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, p)
}

func (s *Server) getService(w http.ResponseWriter, r *http.Request) {
	active, err := s.state.IsServiceActive(r.Context())
	if err != nil {
		http.Error(w, "Service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"active": active})
}

func (s *Server) setService(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if err := s.state.SetServiceActive(r.Context(), body.Active); err != nil {
		http.Error(w, "Service error", http.StatusInternalServerError)
		return
	}

	s.logger.Info("service switch updated", zap.Bool("active", body.Active))
	writeJSON(w, map[string]bool{"active": body.Active})
}

func validatePlatform(p domain.Platform) error {
	if p.Package == "" {
		return errors.New("package is required")
	}
	if p.MinAmount < 0 {
		return errors.New("min_amount must be non-negative")
	}
	if p.MaxAmount < 0 {
		return errors.New("max_amount must be non-negative")
	}
	if p.MaxAmount > 0 && p.MaxAmount < p.MinAmount {
		return errors.New("max_amount must not be below min_amount")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	// Connect middleware
	handler := ServerTimingApp(s.metrics)(s.mux)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.mux }
