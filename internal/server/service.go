package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"connectrpc.com/connect"

	"github.com/dramac-main/dramac-cms-sub014/internal/bizdata"
	"github.com/dramac-main/dramac-cms-sub014/internal/bundlestore"
	"github.com/dramac-main/dramac-cms-sub014/internal/engine"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// GenerateProcedure is the connect route for website generation.
const GenerateProcedure = "/dramac.v1.SiteForgeService/GenerateWebsite"

type GenerateRequest struct {
	SiteID      string                    `json:"site_id"`
	Request     site.GenerationRequest    `json:"request"`
	Business    *site.BusinessDataContext `json:"business,omitempty"`
	StoreBundle bool                      `json:"store_bundle,omitempty"`
}

type GenerateResponse struct {
	Bundle    *site.WebsiteBundle `json:"bundle"`
	BundleKey string              `json:"bundle_key,omitempty"`
}

// Service wires the generation engine to its data sources for RPC exposure.
type Service struct {
	engine  *engine.Engine
	biz     bizdata.Provider
	bundles *bundlestore.S3Store
	logger  *log.Logger
}

func NewService(eng *engine.Engine, biz bizdata.Provider, bundles *bundlestore.S3Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{engine: eng, biz: biz, bundles: bundles, logger: logger}
}

func (s *Service) GenerateWebsite(ctx context.Context, req *connect.Request[GenerateRequest]) (*connect.Response[GenerateResponse], error) {
	msg := req.Msg

	biz := msg.Business
	if biz == nil {
		siteID := strings.TrimSpace(msg.SiteID)
		if siteID == "" {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("site_id or inline business data is required"))
		}
		snap, err := s.biz.Snapshot(ctx, siteID)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("load business data: %w", err))
		}
		biz = snap
	}
	if msg.Request.SiteID == "" {
		msg.Request.SiteID = msg.SiteID
	}

	bundle, err := s.engine.GenerateWebsite(ctx, msg.Request, biz)
	if err != nil {
		return nil, toGenerateError(err)
	}

	resp := &GenerateResponse{Bundle: bundle}
	if msg.StoreBundle && s.bundles != nil {
		key, err := s.bundles.Put(ctx, strings.TrimSpace(msg.SiteID), "", bundle)
		if err != nil {
			s.logger.Printf("store bundle for %s failed: %v", msg.SiteID, err)
		} else {
			resp.BundleKey = key
		}
	}
	return connect.NewResponse(resp), nil
}

func toGenerateError(err error) *connect.Error {
	var invalid *site.InvalidRequestError
	if errors.As(err, &invalid) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	var planning *site.PlanningError
	if errors.As(err, &planning) {
		return connect.NewError(connect.CodeUnavailable, err)
	}
	if errors.Is(err, context.Canceled) {
		return connect.NewError(connect.CodeCanceled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
