package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"greenmint/internal/core"
	"greenmint/internal/http/handler/middleware"
	"greenmint/internal/http/payload"

	"go.uber.org/zap"
)

var (
	RegisterFarmer      = "POST /api/farmers"
	SubmitReading       = "POST /api/readings"
	VerifyReading       = "POST /api/readings/{id}/verify"
	MintFromAttestation = "POST /api/mint-from-attestation"
	ListAssets          = "GET /api/assets"
	RegisterCompany     = "POST /companies/register"
	LoginCompany        = "POST /companies/login"
	CurrentCompany      = "GET /companies/me"
	Summary             = "GET /api/summary"
	Healthz             = "GET /healthz"
)

type GreenmintHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	greenmint        Service
}

func NewGreenmintHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service Service) *GreenmintHandler {
	return &GreenmintHandler{
		logs:             logger,
		requestValidator: requestValidator,
		greenmint:        service,
	}
}

func (h *GreenmintHandler) HandleRegisterFarmer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterFarmerRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not register farmer", err, RegisterFarmer, requestId)
		return
	}

	farmer, err := h.greenmint.RegisterFarmer(r.Context(), req.Name)
	if err != nil {
		h.fail(w, "Could not register farmer", err, RegisterFarmer, requestId)
		return
	}

	h.logs.Infow("farmer registered",
		"farmer_id", farmer.ID,
		"wallet_address", farmer.WalletAddress,
		"handler", RegisterFarmer,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Farmer registered",
		Data:    farmer,
	}, http.StatusCreated, requestId)
}

func (h *GreenmintHandler) HandleSubmitReading(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SubmitReadingRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not submit reading", err, SubmitReading, requestId)
		return
	}

	reading, err := h.greenmint.SubmitReading(r.Context(), req.ToCoreInput())
	if err != nil {
		h.fail(w, "Could not submit reading", err, SubmitReading, requestId)
		return
	}

	h.logs.Infow("reading submitted",
		"reading_id", reading.ID,
		"farmer_id", reading.FarmerID,
		"handler", SubmitReading,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Reading submitted",
		Data:    reading,
	}, http.StatusCreated, requestId)
}

func (h *GreenmintHandler) HandleVerifyReading(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	readingID := r.PathValue("id")
	if readingID == "" {
		h.respond(w, Response{
			Message: "Could not verify reading",
			Error:   "reading id is required",
			Kind:    string(core.KindInvalidInput),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing reading id",
			"handler", VerifyReading,
			"request_id", requestId)
		return
	}

	var req payload.VerifyReadingRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not verify reading", err, VerifyReading, requestId)
		return
	}

	attestation, err := h.greenmint.VerifyReading(r.Context(), readingID, req.VerifierNotes)
	if err != nil {
		h.fail(w, "Could not verify reading", err, VerifyReading, requestId)
		return
	}

	h.logs.Infow("reading attested",
		"reading_id", readingID,
		"attestation_id", attestation.ID,
		"cid", attestation.IPFSCID,
		"handler", VerifyReading,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Reading attested",
		Data:    attestation,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleMintFromAttestation(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.MintRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not mint certificate", err, MintFromAttestation, requestId)
		return
	}

	h.logs.Infow("mint request received",
		"attestation_id", req.AttestationID,
		"mint_to", req.MintTo,
		"handler", MintFromAttestation,
		"request_id", requestId)

	mint, err := h.greenmint.MintFromAttestation(r.Context(), req.AttestationID, req.MintTo)
	if err != nil {
		h.fail(w, "Could not mint certificate", err, MintFromAttestation, requestId)
		return
	}

	h.logs.Infow("certificate minted",
		"attestation_id", req.AttestationID,
		"txn_hash", mint.TxnHash,
		"certificate_id", mint.Asset.CertificateID,
		"handler", MintFromAttestation,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Certificate minted",
		Data:    mint,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleListAssets(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	assets, err := h.greenmint.ListAssets(r.Context(), r.URL.Query()["farmer_id"]...)
	if err != nil {
		h.fail(w, "Could not list assets", err, ListAssets, requestId)
		return
	}

	resp := map[string][]core.Asset{
		"assets": assets,
	}

	h.respond(w, Response{
		Data: resp,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterCompanyRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not register company", err, RegisterCompany, requestId)
		return
	}

	company, err := h.greenmint.RegisterCompany(r.Context(), req.ToCoreInput())
	if err != nil {
		h.fail(w, "Could not register company", err, RegisterCompany, requestId)
		return
	}

	h.logs.Infow("company registered",
		"company_id", company.ID,
		"handler", RegisterCompany,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Company registered",
		Data:    company,
	}, http.StatusCreated, requestId)
}

func (h *GreenmintHandler) HandleLoginCompany(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Login failed", err, LoginCompany, requestId)
		return
	}

	session, err := h.greenmint.LoginCompany(r.Context(), req.ToCoreInput())
	if err != nil {
		h.fail(w, "Login failed", err, LoginCompany, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    session,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleCurrentCompany(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	company, err := h.greenmint.CurrentCompany(r.Context(), bearerToken(r))
	if err != nil {
		h.fail(w, "Could not resolve session", err, CurrentCompany, requestId)
		return
	}

	h.respond(w, Response{
		Data: company,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	summary, err := h.greenmint.Summary(r.Context())
	if err != nil {
		h.fail(w, "Could not compute summary", err, Summary, requestId)
		return
	}

	h.respond(w, Response{
		Data: summary,
	}, http.StatusOK, requestId)
}

func (h *GreenmintHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, requestID(r))
}

func (h *GreenmintHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		Kind:    string(core.KindInvalidInput),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// fail maps a service error onto a status code. Internal and configuration
// details stay in the logs.
func (h *GreenmintHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	kind := core.KindOf(err)
	code := statusFor(kind)

	resp := Response{
		Message: message,
		Error:   err.Error(),
		Kind:    string(kind),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"kind", kind,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func statusFor(kind core.Kind) int {
	switch kind {
	case core.KindInvalidInput:
		return http.StatusBadRequest
	case core.KindUnauthorized:
		return http.StatusUnauthorized
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindConflict:
		return http.StatusConflict
	case core.KindExternal, core.KindRejected:
		return http.StatusBadGateway
	case core.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// bearerToken reads the session token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return token
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}

func (h *GreenmintHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
