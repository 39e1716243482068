package v1alpha1

import (
	"context"
	"encoding/json"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	CatalogService catalog.Service
	// SeedDir is the directory SeedCatalog reloads from
	SeedDir string
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.SeedDir == "" {
		vb.RequiredField("SeedDir")
	}

	return vb.Build()
}

// CatalogHandler implements the catalog gRPC service
type CatalogHandler struct {
	apiv1alpha1.UnimplementedCatalogServiceServer
	catalogService catalog.Service
	seedDir        string
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		catalogService: cfg.CatalogService,
		seedDir:        cfg.SeedDir,
	}, nil
}

// ListEntries returns every row of a table
func (h *CatalogHandler) ListEntries(
	ctx context.Context,
	req *apiv1alpha1.ListEntriesRequest,
) (*apiv1alpha1.ListEntriesResponse, error) {
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	output, err := h.catalogService.ListEntries(ctx, &catalog.ListEntriesInput{Kind: req.Kind})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*apiv1alpha1.CatalogEntry, 0, len(output.Entries))
	for _, entry := range output.Entries {
		protoEntry, err := convertEntryToProto(output.Kind, entry)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		entries = append(entries, protoEntry)
	}

	return &apiv1alpha1.ListEntriesResponse{Entries: entries}, nil
}

// GetEntry returns one row
func (h *CatalogHandler) GetEntry(
	ctx context.Context,
	req *apiv1alpha1.GetEntryRequest,
) (*apiv1alpha1.GetEntryResponse, error) {
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.catalogService.GetEntry(ctx, &catalog.GetEntryInput{Kind: req.Kind, Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	protoEntry, err := convertEntryToProto(output.Kind, output.Entry)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetEntryResponse{Entry: protoEntry}, nil
}

// PutEntry creates or replaces a row
func (h *CatalogHandler) PutEntry(
	ctx context.Context,
	req *apiv1alpha1.PutEntryRequest,
) (*apiv1alpha1.PutEntryResponse, error) {
	kind, ok := paranormal.ParseCatalogKind(req.Kind)
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown catalog kind %q", req.Kind))
	}
	if len(req.Entry) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entry is required"))
	}

	entry, err := paranormal.NewCatalogEntry(kind)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := json.Unmarshal(req.Entry, entry); err != nil {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("entry is not a valid %s row: %v", kind, err))
	}

	output, err := h.catalogService.PutEntry(ctx, &catalog.PutEntryInput{Kind: string(kind), Entry: entry})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	protoEntry, err := convertEntryToProto(output.Kind, output.Entry)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.PutEntryResponse{Entry: protoEntry}, nil
}

// DeleteEntry removes a row
func (h *CatalogHandler) DeleteEntry(
	ctx context.Context,
	req *apiv1alpha1.DeleteEntryRequest,
) (*apiv1alpha1.DeleteEntryResponse, error) {
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	if _, err := h.catalogService.DeleteEntry(ctx, &catalog.DeleteEntryInput{Kind: req.Kind, Name: req.Name}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.DeleteEntryResponse{Message: "Entry deleted successfully"}, nil
}

// SeedCatalog reloads the configured seed directory
func (h *CatalogHandler) SeedCatalog(
	ctx context.Context,
	req *apiv1alpha1.SeedCatalogRequest,
) (*apiv1alpha1.SeedCatalogResponse, error) {
	output, err := h.catalogService.Seed(ctx, &catalog.SeedInput{Dir: h.seedDir, Replace: req.Replace})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	counts := make(map[string]int32, len(output.Counts))
	for kind, count := range output.Counts {
		counts[string(kind)] = int32(count)
	}

	return &apiv1alpha1.SeedCatalogResponse{Counts: counts}, nil
}

func convertEntryToProto(kind paranormal.CatalogKind, entry paranormal.CatalogEntry) (*apiv1alpha1.CatalogEntry, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode catalog entry")
	}
	return &apiv1alpha1.CatalogEntry{
		Kind:  string(kind),
		Name:  entry.EntryName(),
		Entry: data,
	}, nil
}
