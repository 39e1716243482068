package v1alpha1_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/handlers/paranormal/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog/mock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockService
	handler     *v1alpha1.CatalogHandler
	ctx         context.Context
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		CatalogService: s.mockCatalog,
		SeedDir:        "data/catalog",
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogHandlerTestSuite) TestNewCatalogHandler_InvalidConfig() {
	_, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{})
	s.Error(err)
}

func (s *CatalogHandlerTestSuite) TestListEntries() {
	s.mockCatalog.EXPECT().
		ListEntries(s.ctx, &catalog.ListEntriesInput{Kind: "skills"}).
		Return(&catalog.ListEntriesOutput{
			Kind: paranormal.KindSkills,
			Entries: []paranormal.CatalogEntry{
				&paranormal.Skill{Name: "Luta", Attribute: paranormal.Strength},
				&paranormal.Skill{Name: "Pontaria", Attribute: paranormal.Agility},
			},
		}, nil)

	resp, err := s.handler.ListEntries(s.ctx, &apiv1alpha1.ListEntriesRequest{Kind: "skills"})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)
	s.Equal("Luta", resp.Entries[0].Name)
	s.Equal("skills", resp.Entries[0].Kind)
	s.JSONEq(`{"name":"Pontaria","attribute":"AGI"}`, string(resp.Entries[1].Entry))
}

func (s *CatalogHandlerTestSuite) TestGetEntry_MissingName() {
	_, err := s.handler.GetEntry(s.ctx, &apiv1alpha1.GetEntryRequest{Kind: "weapons"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CatalogHandlerTestSuite) TestPutEntry_DecodesByKind() {
	s.mockCatalog.EXPECT().
		PutEntry(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *catalog.PutEntryInput) (*catalog.PutEntryOutput, error) {
			weapon, ok := input.Entry.(*paranormal.Weapon)
			s.Require().True(ok)
			s.Equal("weapons", input.Kind)
			s.Equal("1d6", weapon.Damage)
			s.Equal("Luta", weapon.Skill)
			return &catalog.PutEntryOutput{Kind: paranormal.KindWeapons, Entry: weapon}, nil
		})

	resp, err := s.handler.PutEntry(s.ctx, &apiv1alpha1.PutEntryRequest{
		Kind:  "Weapons",
		Entry: json.RawMessage(`{"name":"Machadinha","damage":"1d6","multiplier":3,"skill":"Luta","space":1}`),
	})
	s.Require().NoError(err)
	s.Equal("Machadinha", resp.Entry.Name)
}

func (s *CatalogHandlerTestSuite) TestPutEntry_Rejected() {
	testCases := []struct {
		name string
		req  *apiv1alpha1.PutEntryRequest
	}{
		{
			name: "unknown kind",
			req:  &apiv1alpha1.PutEntryRequest{Kind: "spells", Entry: json.RawMessage(`{"name":"x"}`)},
		},
		{
			name: "missing entry",
			req:  &apiv1alpha1.PutEntryRequest{Kind: "skills"},
		},
		{
			name: "malformed entry",
			req:  &apiv1alpha1.PutEntryRequest{Kind: "skills", Entry: json.RawMessage(`{"name":7}`)},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.PutEntry(s.ctx, tc.req)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *CatalogHandlerTestSuite) TestDeleteEntry_NotFound() {
	s.mockCatalog.EXPECT().
		DeleteEntry(s.ctx, &catalog.DeleteEntryInput{Kind: "rituals", Name: "Decadência"}).
		Return(nil, errors.NotFound("entry not found"))

	_, err := s.handler.DeleteEntry(s.ctx, &apiv1alpha1.DeleteEntryRequest{Kind: "rituals", Name: "Decadência"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *CatalogHandlerTestSuite) TestSeedCatalog_UsesConfiguredDir() {
	s.mockCatalog.EXPECT().
		Seed(s.ctx, &catalog.SeedInput{Dir: "data/catalog", Replace: true}).
		Return(&catalog.SeedOutput{Counts: map[paranormal.CatalogKind]int{paranormal.KindSkills: 28}}, nil)

	resp, err := s.handler.SeedCatalog(s.ctx, &apiv1alpha1.SeedCatalogRequest{Replace: true})
	s.Require().NoError(err)
	s.Equal(map[string]int32{"skills": 28}, resp.Counts)
}
