package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nmasri/laneplan/pkg/domain/entities"
	"github.com/nmasri/laneplan/pkg/interfaces/export"
)

// errorBody is the JSON error envelope every failure response carries.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	key, err := s.periodKeyFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheKey := reportCacheKey(key, "gap")
	if cached, ok := s.cache.get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, err := s.svc.GapReport(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.set(cacheKey, report)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleGapExport(w http.ResponseWriter, r *http.Request) {
	key, err := s.periodKeyFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	report, err := s.svc.GapReport(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCSV(w, fmt.Sprintf("gap_%d-%02d.csv", key.Year, key.Sequence), export.GapRecords(report))
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	key, err := s.periodKeyFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheKey := reportCacheKey(key, "dispatch")
	if cached, ok := s.cache.get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, err := s.svc.DispatchReport(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.set(cacheKey, report)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDispatchExport(w http.ResponseWriter, r *http.Request) {
	key, err := s.periodKeyFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	report, err := s.svc.DispatchReport(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCSV(w, fmt.Sprintf("dispatch_%d-%02d.csv", key.Year, key.Sequence), export.DispatchRecords(report))
}

func (s *Server) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	key, err := s.periodKeyFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheKey := reportCacheKey(key, "accuracy")
	if cached, ok := s.cache.get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, err := s.svc.AccuracyReport(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.set(cacheKey, report)
	writeJSON(w, http.StatusOK, report)
}

// periodRequest identifies a period in write-path request bodies.
type periodRequest struct {
	Tenant string `json:"tenant"`
	Year   int    `json:"year"`
	Seq    int    `json:"seq"`
	Cycle  string `json:"cycle"`
}

func (s *Server) handleLock(locked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req periodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, fmt.Errorf("decoding request body: %w", entities.ErrValidation))
			return
		}
		key, err := req.periodKey()
		if err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.svc.SetLocked(r.Context(), key, locked); err != nil {
			s.writeError(w, err)
			return
		}
		s.cache.invalidateTenant(req.Tenant)
		writeJSON(w, http.StatusOK, map[string]bool{"locked": locked})
	}
}

// rowRequest is the write-path body for demand and supply rows. The
// contributor fields are the client for demand and the supplier for
// supply.
type rowRequest struct {
	periodRequest
	ID              string              `json:"id"`
	Pickup          string              `json:"pickup"`
	Dropoff         string              `json:"dropoff"`
	ContributorID   string              `json:"contributor_id"`
	ContributorName string              `json:"contributor_name"`
	Slots           entities.SlotVector `json:"slots"`
}

func (s *Server) handleSaveDemand(w http.ResponseWriter, r *http.Request) {
	var req rowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("decoding request body: %w", entities.ErrValidation))
		return
	}
	key, err := req.periodKey()
	if err != nil {
		s.writeError(w, err)
		return
	}

	row := entities.DemandRow{
		ID:         req.ID,
		RouteKey:   entities.NewRouteKey(req.Pickup, req.Dropoff),
		ClientID:   entities.ClientID(req.ContributorID),
		ClientName: req.ContributorName,
		Slots:      req.Slots,
	}
	if err := s.svc.SaveDemand(r.Context(), key, row); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.invalidateTenant(req.Tenant)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (s *Server) handleSaveSupply(w http.ResponseWriter, r *http.Request) {
	var req rowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("decoding request body: %w", entities.ErrValidation))
		return
	}
	key, err := req.periodKey()
	if err != nil {
		s.writeError(w, err)
		return
	}

	row := entities.SupplyRow{
		ID:           req.ID,
		RouteKey:     entities.NewRouteKey(req.Pickup, req.Dropoff),
		SupplierID:   entities.SupplierID(req.ContributorID),
		SupplierName: req.ContributorName,
		Slots:        req.Slots,
	}
	if err := s.svc.SaveSupply(r.Context(), key, row); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.invalidateTenant(req.Tenant)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (req periodRequest) periodKey() (entities.PeriodKey, error) {
	cycle := entities.Weekly
	if req.Cycle != "" {
		var err error
		cycle, err = entities.ParseCycleKind(req.Cycle)
		if err != nil {
			return entities.PeriodKey{}, err
		}
	}
	key := entities.PeriodKey{
		TenantID: entities.TenantID(req.Tenant),
		Year:     req.Year,
		Sequence: req.Seq,
		Cycle:    cycle,
	}
	if err := key.Validate(); err != nil {
		return entities.PeriodKey{}, err
	}
	return key, nil
}

// periodKeyFromQuery resolves the period key from tenant/year/seq/cycle
// query parameters. When year and seq are omitted the tenant's current
// period is used, creating it on first access.
func (s *Server) periodKeyFromQuery(r *http.Request) (entities.PeriodKey, error) {
	q := r.URL.Query()

	tenant := q.Get("tenant")
	if tenant == "" {
		return entities.PeriodKey{}, fmt.Errorf("missing tenant parameter: %w", entities.ErrValidation)
	}

	cycle := entities.Weekly
	if c := q.Get("cycle"); c != "" {
		var err error
		cycle, err = entities.ParseCycleKind(c)
		if err != nil {
			return entities.PeriodKey{}, err
		}
	}

	yearStr, seqStr := q.Get("year"), q.Get("seq")
	if yearStr == "" && seqStr == "" {
		period, err := s.svc.CurrentPeriod(r.Context(), entities.TenantID(tenant), cycle)
		if err != nil {
			return entities.PeriodKey{}, err
		}
		return period.PeriodKey, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return entities.PeriodKey{}, fmt.Errorf("invalid year %q: %w", yearStr, entities.ErrValidation)
	}
	seq, err := strconv.Atoi(seqStr)
	if err != nil {
		return entities.PeriodKey{}, fmt.Errorf("invalid seq %q: %w", seqStr, entities.ErrValidation)
	}

	key := entities.PeriodKey{
		TenantID: entities.TenantID(tenant),
		Year:     year,
		Sequence: seq,
		Cycle:    cycle,
	}
	if err := key.Validate(); err != nil {
		return entities.PeriodKey{}, err
	}
	return key, nil
}

func reportCacheKey(key entities.PeriodKey, report string) string {
	// Keys start with "tenant:" so tenant-wide invalidation can prefix
	// scan; key.ID() already has that shape.
	return key.ID() + ":" + report
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeCSV(w http.ResponseWriter, filename string, records [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := export.WriteCSV(w, records); err != nil {
		s.log.Error("writing csv export", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes and stable error
// codes the frontend can branch on.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	switch {
	case errors.Is(err, entities.ErrPeriodNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, entities.ErrPeriodLocked):
		status, code = http.StatusConflict, "LOCKED"
	case errors.Is(err, entities.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		s.log.Error("request failed", "error", err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}
