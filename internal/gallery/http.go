// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

package gallery

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fotomoment/gallery-api/internal/identity"
	"github.com/fotomoment/gallery-api/internal/media"
	"github.com/fotomoment/gallery-api/internal/platform/ctxutil"
	requestutil "github.com/fotomoment/gallery-api/internal/platform/request"
	"github.com/fotomoment/gallery-api/internal/platform/respond"
)

// Handler serves the six gallery endpoints.
//
// Every handler is a straight sequence with early exits: required
// parameters, then the admin gate (admin endpoints only), then the service
// call, then the envelope. Method mismatches never reach a handler — the
// router answers 405 itself.
type Handler struct {
	service *Service
	gate    *identity.Gate
}

// NewHandler creates the gallery HTTP handler set.
func NewHandler(service *Service, gate *identity.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// RegisterRoutes mounts the endpoints. Paths are kept identical to the
// legacy deployment because the frontend has them hardcoded.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/adminListImages", handler.adminListImages)
	router.Post("/adminApproveImages", handler.adminApproveImages)
	router.Post("/adminUnapproveImages", handler.adminUnapproveImages)
	router.Post("/adminDeleteImages", handler.adminDeleteImages)
	router.Get("/listEventFolders", handler.listEventFolders)
	router.Get("/publicApprovedImages", handler.publicApprovedImages)
}

// # Request / Response Shapes

// bulkRequest is the body of all three mutation endpoints. The operation
// kind is fixed by the endpoint, never supplied by the caller.
type bulkRequest struct {
	PublicIDs []string `json:"publicIds"`
}

type adminListResponse struct {
	Success bool         `json:"success"`
	Event   string       `json:"event"`
	Total   int          `json:"total"`
	Images  []AdminImage `json:"images"`
}

type approveResponse struct {
	Success  bool                   `json:"success"`
	Approved int                    `json:"approved"`
	Results  []media.MutationResult `json:"results"`
}

type unapproveResponse struct {
	Success    bool                   `json:"success"`
	Unapproved int                    `json:"unapproved"`
	Results    []media.MutationResult `json:"results"`
}

type deleteResponse struct {
	Success bool                   `json:"success"`
	Deleted int                    `json:"deleted"`
	Results []media.MutationResult `json:"results"`
}

type foldersResponse struct {
	Success bool          `json:"success"`
	Total   int           `json:"total"`
	Folders []EventFolder `json:"folders"`
}

type publicListResponse struct {
	Success bool          `json:"success"`
	Event   string        `json:"event"`
	Total   int           `json:"total"`
	Images  []PublicImage `json:"images"`
}

// # Admin Endpoints

// adminListImages handles GET /adminListImages?event=<id>.
func (handler *Handler) adminListImages(writer http.ResponseWriter, request *http.Request) {
	event, err := requestutil.RequiredQuery(request, "event")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	subject, err := handler.gate.Authorize(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	images, err := handler.service.ListEventImages(request.Context(), event)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("admin_list_images",
		slog.String("subject", subject),
		slog.String("event", event),
		slog.Int("total", len(images)),
	)

	respond.OK(writer, adminListResponse{
		Success: true,
		Event:   event,
		Total:   len(images),
		Images:  images,
	})
}

// adminApproveImages handles POST /adminApproveImages.
func (handler *Handler) adminApproveImages(writer http.ResponseWriter, request *http.Request) {
	publicIDs, subject, ok := handler.bulkPrelude(writer, request)
	if !ok {
		return
	}

	results, err := handler.service.Approve(request.Context(), publicIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("admin_approve_images",
		slog.String("subject", subject),
		slog.Int("count", len(publicIDs)),
	)

	respond.OK(writer, approveResponse{
		Success:  true,
		Approved: len(publicIDs),
		Results:  results,
	})
}

// adminUnapproveImages handles POST /adminUnapproveImages.
func (handler *Handler) adminUnapproveImages(writer http.ResponseWriter, request *http.Request) {
	publicIDs, subject, ok := handler.bulkPrelude(writer, request)
	if !ok {
		return
	}

	results, err := handler.service.Unapprove(request.Context(), publicIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("admin_unapprove_images",
		slog.String("subject", subject),
		slog.Int("count", len(publicIDs)),
	)

	respond.OK(writer, unapproveResponse{
		Success:    true,
		Unapproved: len(publicIDs),
		Results:    results,
	})
}

// adminDeleteImages handles POST /adminDeleteImages.
func (handler *Handler) adminDeleteImages(writer http.ResponseWriter, request *http.Request) {
	publicIDs, subject, ok := handler.bulkPrelude(writer, request)
	if !ok {
		return
	}

	results, err := handler.service.Delete(request.Context(), publicIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).Info("admin_delete_images",
		slog.String("subject", subject),
		slog.Int("count", len(publicIDs)),
	)

	respond.OK(writer, deleteResponse{
		Success: true,
		Deleted: len(publicIDs),
		Results: results,
	})
}

// bulkPrelude runs the shared opening sequence of the three mutation
// endpoints: decode the body, validate the batch shape, then the admin
// gate. Validation runs before the gate so a malformed batch is a 400 even
// with a bad token.
func (handler *Handler) bulkPrelude(writer http.ResponseWriter, request *http.Request) (publicIDs []string, subject string, ok bool) {
	var body bulkRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return nil, "", false
	}

	if err := ValidateBatch(body.PublicIDs); err != nil {
		respond.Error(writer, request, err)
		return nil, "", false
	}

	subject, err := handler.gate.Authorize(request)
	if err != nil {
		respond.Error(writer, request, err)
		return nil, "", false
	}

	return body.PublicIDs, subject, true
}

// # Public Endpoints

// listEventFolders handles GET /listEventFolders. Event names are not
// secret, so there is no gate.
func (handler *Handler) listEventFolders(writer http.ResponseWriter, request *http.Request) {
	folders, err := handler.service.ListEventFolders(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, foldersResponse{
		Success: true,
		Total:   len(folders),
		Folders: folders,
	})
}

// publicApprovedImages handles GET /publicApprovedImages?event=<id>.
func (handler *Handler) publicApprovedImages(writer http.ResponseWriter, request *http.Request) {
	event, err := requestutil.RequiredQuery(request, "event")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	images, err := handler.service.ListApprovedImages(request.Context(), event)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, publicListResponse{
		Success: true,
		Event:   event,
		Total:   len(images),
		Images:  images,
	})
}
